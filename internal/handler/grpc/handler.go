// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the blog server. It serves
// the standard health protocol backed by the application's readiness check.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/service"
)

// ServiceName is the health-check name of the blog service. The empty name
// reports the server as a whole.
const ServiceName = "goblog.Blog"

const msgUnknownService = "unknown service"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h)
}

// Check reports SERVING while the database answers. Unknown service names
// fail with NotFound as the health protocol requires.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, apperr.NotFound(msgUnknownService)
	}

	return &grpc_health_v1.HealthCheckResponse{Status: h.status(ctx)}, nil
}

// List reports the status of the server and of the blog service.
func (h *Handler) List(ctx context.Context, _ *grpc_health_v1.HealthListRequest) (*grpc_health_v1.HealthListResponse, error) {
	st := h.status(ctx)
	return &grpc_health_v1.HealthListResponse{
		Statuses: map[string]*grpc_health_v1.HealthCheckResponse{
			"":          {Status: st},
			ServiceName: {Status: st},
		},
	}, nil
}

func (h *Handler) status(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if err := h.services.AppInfoService.Health(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
