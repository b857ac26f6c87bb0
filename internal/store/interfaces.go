// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/neo-f/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin returns the user with the given login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	// CreatePost inserts post and returns it with PostID and CreatedAt set.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// FindPostByID returns the post with the given id, author login included.
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	// ListPosts returns one page of posts, newest first.
	ListPosts(ctx context.Context, page models.Page) ([]models.Post, error)
	// DeletePost removes the post with the given id.
	DeletePost(ctx context.Context, postID int64) error
}
