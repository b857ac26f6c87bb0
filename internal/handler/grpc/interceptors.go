// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/neo-f/go-blog/internal/utils"
)

// traceIDKey is the metadata key carrying the trace id, the gRPC
// counterpart of the X-Trace-ID header.
const traceIDKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a child logger with trace_id to the call
// context and logs method, code and duration once the call returns.
func (h *Handler) UnaryLoggingInterceptor() grpc.UnaryServerInterceptor {
	ids := utils.NewUUIDGenerator()

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		traceID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(traceIDKey); len(v) > 0 {
				traceID = v[0]
			}
		}
		if traceID == "" {
			traceID = ids.Generate()
		}

		l, ctx := h.logger.WithTraceID(utils.WithTraceID(ctx, traceID), traceID)

		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}

// UnaryTimeoutInterceptor bounds every call context by d. A zero d leaves
// the context as the client sent it.
func UnaryTimeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if d <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
