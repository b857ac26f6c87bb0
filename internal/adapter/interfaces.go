// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the blog REST API.
//
// [BlogClient] decouples callers from the protocol. Error responses are
// decoded back into [*apperr.ServiceError] with [apperr.FromResponse], so a
// client can branch on the same four categories the server renders.
// Transport failures wrap [ErrRequestFailed].
package adapter

import (
	"context"

	"github.com/neo-f/go-blog/models"
)

// BlogClient is a client of the blog server.
type BlogClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before Register or Login.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, slug string) (models.Post, error)
	ListPosts(ctx context.Context, page models.Page) (models.PostList, error)
	DeletePost(ctx context.Context, slug string) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
