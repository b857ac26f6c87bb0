// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/service"
	"github.com/neo-f/go-blog/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: 1}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockPostService struct {
	createPostFn func(ctx context.Context, post models.Post) (models.Post, error)
	getPostFn    func(ctx context.Context, slug string) (models.Post, error)
	listPostsFn  func(ctx context.Context, page models.Page) (models.PostList, error)
	deletePostFn func(ctx context.Context, userID int64, slug string) error
}

func (m *mockPostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return m.createPostFn(ctx, post)
}

func (m *mockPostService) GetPost(ctx context.Context, slug string) (models.Post, error) {
	return m.getPostFn(ctx, slug)
}

func (m *mockPostService) ListPosts(ctx context.Context, page models.Page) (models.PostList, error) {
	return m.listPostsFn(ctx, page)
}

func (m *mockPostService) DeletePost(ctx context.Context, userID int64, slug string) error {
	return m.deletePostFn(ctx, userID, slug)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newHandlerWithServices(svcs *service.Services) *Handler {
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, nil, 0, logger.Nop())
}

// errorBody decodes the JSON string body written by apperr.Write.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
