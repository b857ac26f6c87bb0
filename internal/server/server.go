// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/handler"
	"github.com/neo-f/go-blog/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer builds a listener for every address set in cfg. An address
// without a matching handler is a configuration error.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, errNoHandlerForServer
		}
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, errNoHandlerForServer
		}
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.gRPCServer = grpcSrv
	}

	if len(s.transports()) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// transports lists the enabled listeners in start order.
func (s *server) transports() []Server {
	var ts []Server
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives, or until one of
// the listeners stops on its own, then shuts every listener down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	for _, t := range s.transports() {
		t.Shutdown()
	}
}

func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, t := range s.transports() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			t.RunServer()
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server stopped gracefully")
}
