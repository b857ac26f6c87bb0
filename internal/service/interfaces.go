// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/neo-f/go-blog/models"
)

// AuthService registers users, checks credentials and manages access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService manages blog posts. Posts are addressed by slug.
type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, slug string) (models.Post, error)
	ListPosts(ctx context.Context, page models.Page) (models.PostList, error)
	DeletePost(ctx context.Context, userID int64, slug string) error
}

// AppInfoService reports build information and readiness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) error
}

// Pinger checks that a backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
