// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/models"
)

// ─────────────────────────────────────────────
// Stubs
// ─────────────────────────────────────────────

type stubAuthService struct {
	registered []models.User
	loggedIn   []models.User
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	s.registered = append(s.registered, user)
	return user, nil
}

func (s *stubAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	s.loggedIn = append(s.loggedIn, user)
	return user, nil
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed"}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return models.Token{SignedString: tokenString}, nil
}

type stubPostService struct {
	created []models.Post
	pages   []models.Page
}

func (s *stubPostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	s.created = append(s.created, post)
	return post, nil
}

func (s *stubPostService) GetPost(ctx context.Context, slug string) (models.Post, error) {
	return models.Post{Slug: slug}, nil
}

func (s *stubPostService) ListPosts(ctx context.Context, page models.Page) (models.PostList, error) {
	s.pages = append(s.pages, page)
	return models.PostList{Limit: page.Limit, Offset: page.Offset}, nil
}

func (s *stubPostService) DeletePost(ctx context.Context, userID int64, slug string) error {
	return nil
}

func requireBadRequest(t *testing.T, err error, msg string) {
	t.Helper()
	var svcErr *apperr.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperr.KindBadRequest, svcErr.Kind)
	assert.Equal(t, msg, svcErr.Message)
}

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func TestAuthValidation_RegisterUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantMsg string
	}{
		{name: "valid", user: models.User{Login: "alice", Password: "password1"}},
		{name: "missing login", user: models.User{Password: "password1"}, wantMsg: "login is required"},
		{name: "short login", user: models.User{Login: "al", Password: "password1"}, wantMsg: "login must be at least 3"},
		{name: "punctuation in login", user: models.User{Login: "al ice", Password: "password1"}, wantMsg: "login must contain only letters and digits"},
		{name: "short password", user: models.User{Login: "alice", Password: "pass"}, wantMsg: "password must be at least 8"},
		{name: "long name", user: models.User{Login: "alice", Name: strings.Repeat("n", 129), Password: "password1"}, wantMsg: "name must be at most 128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &stubAuthService{}
			svc := NewAuthValidationService().Wrap(inner)

			_, err := svc.RegisterUser(context.Background(), tt.user)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Len(t, inner.registered, 1)
				return
			}
			requireBadRequest(t, err, tt.wantMsg)
			assert.Empty(t, inner.registered)
		})
	}
}

func TestAuthValidation_LoginIgnoresPasswordRules(t *testing.T) {
	inner := &stubAuthService{}
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "x"})
	require.NoError(t, err)
	assert.Len(t, inner.loggedIn, 1)
}

func TestAuthValidation_TokenCallsPassThrough(t *testing.T) {
	svc := NewAuthValidationService().Wrap(&stubAuthService{})

	issued, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "signed", issued.SignedString)

	parsed, err := svc.ParseToken(context.Background(), "raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", parsed.SignedString)
}

// ─────────────────────────────────────────────
// PostValidationService
// ─────────────────────────────────────────────

func TestPostValidation_CreatePost(t *testing.T) {
	tests := []struct {
		name    string
		post    models.Post
		wantMsg string
	}{
		{name: "valid", post: models.Post{Title: "Hello", Body: "World"}},
		{name: "missing title", post: models.Post{Body: "World"}, wantMsg: "title is required"},
		{name: "missing body", post: models.Post{Title: "Hello"}, wantMsg: "body is required"},
		{name: "long title", post: models.Post{Title: strings.Repeat("t", 201), Body: "World"}, wantMsg: "title must be at most 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &stubPostService{}
			svc := NewPostValidationService().Wrap(inner)

			_, err := svc.CreatePost(context.Background(), tt.post)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Len(t, inner.created, 1)
				return
			}
			requireBadRequest(t, err, tt.wantMsg)
			assert.Empty(t, inner.created)
		})
	}
}

func TestPostValidation_ListPosts(t *testing.T) {
	inner := &stubPostService{}
	svc := NewPostValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.ListPosts(ctx, models.Page{})
	require.NoError(t, err)
	require.Len(t, inner.pages, 1)
	assert.Equal(t, models.DefaultPage.Limit, inner.pages[0].Limit)

	_, err = svc.ListPosts(ctx, models.Page{Limit: 101})
	requireBadRequest(t, err, "limit must be at most 100")
	assert.Len(t, inner.pages, 1)

	_, err = svc.ListPosts(ctx, models.Page{Limit: 5, Offset: math.MaxInt64 + 1})
	requireBadRequest(t, err, "offset must be at most 9223372036854775807")
	assert.Len(t, inner.pages, 1)

	_, err = svc.ListPosts(ctx, models.Page{Limit: 5, Offset: math.MaxInt64})
	require.NoError(t, err)
	assert.Len(t, inner.pages, 2)
}
