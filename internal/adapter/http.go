// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/utils"
	"github.com/neo-f/go-blog/models"
)

type httpBlogClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogClient constructs the REST implementation of [BlogClient]. A
// base address without a scheme is taken as http.
func NewHTTPBlogClient(cfg config.ClientAdapter, logger *logger.Logger) (BlogClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{log: logger})

	return &httpBlogClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyAddress, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpBlogClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogClient) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpBlogClient) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

// authenticate posts credentials and keeps the token from the body, falling
// back to the Authorization header.
func (h *httpBlogClient) authenticate(ctx context.Context, path string, user models.User) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).SetBody(user).Post(path)
	if err := check(resp, err, path); err != nil {
		return auth, err
	}
	if err = decode(resp, &auth); err != nil {
		return auth, err
	}

	if auth.Token == "" {
		if auth.Token, err = token.ParseBearer(resp.Header().Get("Authorization")); err != nil {
			return auth, fmt.Errorf("%w: %w", ErrNoToken, err)
		}
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpBlogClient) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var created models.Post

	resp, err := h.request(ctx).SetBody(post).Post("/api/posts")
	if err := check(resp, err, "create post"); err != nil {
		return created, err
	}

	return created, decode(resp, &created)
}

func (h *httpBlogClient) GetPost(ctx context.Context, slug string) (models.Post, error) {
	var post models.Post

	resp, err := h.request(ctx).SetPathParam("slug", slug).Get("/api/posts/{slug}")
	if err := check(resp, err, "get post"); err != nil {
		return post, err
	}

	return post, decode(resp, &post)
}

func (h *httpBlogClient) ListPosts(ctx context.Context, page models.Page) (models.PostList, error) {
	var list models.PostList

	req := h.request(ctx)
	if page.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(page.Limit, 10))
	}
	if page.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(page.Offset, 10))
	}

	resp, err := req.Get("/api/posts")
	if err := check(resp, err, "list posts"); err != nil {
		return list, err
	}

	return list, decode(resp, &list)
}

func (h *httpBlogClient) DeletePost(ctx context.Context, slug string) error {
	resp, err := h.request(ctx).SetPathParam("slug", slug).Delete("/api/posts/{slug}")
	return check(resp, err, "delete post")
}

func (h *httpBlogClient) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err := check(resp, err, "version"); err != nil {
		return "", err
	}
	return string(resp.Body()), nil
}

// request starts a request carrying the stored token, if any.
func (h *httpBlogClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if t := h.Token(); t != "" {
		req.SetAuthToken(t)
	}
	return req
}

// check turns a transport failure or a non-2xx response into an error. Error
// responses become the [*apperr.ServiceError] the server rendered.
func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, op, err)
	}
	if svcErr := apperr.FromResponse(resp.StatusCode(), resp.Body()); svcErr != nil {
		return svcErr
	}
	return nil
}

func decode(resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
