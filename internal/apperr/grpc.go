// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code returns the gRPC code of the category.
func (k Kind) Code() codes.Code {
	switch k {
	case KindBadRequest:
		return codes.InvalidArgument
	case KindUnauthorized:
		return codes.Unauthenticated
	case KindNotFound:
		return codes.NotFound
	case KindInternalServerError:
		return codes.Internal
	}
	return codes.Internal
}

// GRPCStatus lets status.FromError and status.Code recognize e. The status
// message is the rendered body; a nil e is the internal error.
func (e *ServiceError) GRPCStatus() *status.Status {
	if e == nil {
		return status.New(codes.Internal, TagInternal)
	}
	return status.New(e.Kind.Code(), Render(e).Body)
}

// UnaryServerInterceptor translates every handler error into a gRPC status.
// Errors that already carry a foreign gRPC status pass through.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var svcErr *ServiceError
		if !errors.As(err, &svcErr) {
			if _, ok := status.FromError(err); ok {
				return resp, err
			}
		}
		return resp, Translate(err).GRPCStatus().Err()
	}
}
