// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/config"
	myGRPC "github.com/neo-f/go-blog/internal/handler/grpc"
	"github.com/neo-f/go-blog/internal/logger"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		logger.Err(err).Str("address", cfg.GRPCAddress).Msg("gRPC listener failed")
		return nil, fmt.Errorf("failed to bind %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			handler.UnaryLoggingInterceptor(),
			myGRPC.UnaryTimeoutInterceptor(cfg.RequestTimeout),
			apperr.UnaryServerInterceptor(),
		),
	)
	handler.Register(server)

	return &grpcServer{
		server:          server,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown waits for in-flight calls, then forces the stop after
// shutdownTimeout.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.server.Stop()
	}
}
