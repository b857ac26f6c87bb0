// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/utils"
	"github.com/neo-f/go-blog/models"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
		wantBody   string
		wantUserID int64
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "lower case scheme",
			header:     "bearer good",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name:       "basic scheme",
			header:     "Basic YWxpY2U6cHc=",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
		{
			name:       "malformed token",
			header:     "Bearer garbage",
			parseErr:   &token.Error{Kind: token.InvalidToken, Err: jwt.ErrTokenMalformed},
			wantStatus: http.StatusBadRequest,
			wantBody:   apperr.MsgInvalidToken,
		},
		{
			name:       "foreign issuer",
			header:     "Bearer foreign",
			parseErr:   &token.Error{Kind: token.InvalidIssuer, Err: jwt.ErrTokenInvalidIssuer},
			wantStatus: http.StatusBadRequest,
			wantBody:   apperr.MsgInvalidIssuer,
		},
		{
			name:       "expired token",
			header:     "Bearer old",
			parseErr:   &token.Error{Kind: token.Expired, Err: jwt.ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, raw string) (models.Token, error) {
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					assert.Equal(t, "good", raw)
					return models.Token{UserID: 42}, nil
				},
			}
			h := newHandlerWithAuth(auth)

			var gotUserID int64
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = utils.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, nextCalled)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
				return
			}
			assert.Equal(t, tt.wantBody, errorBody(t, rec))
		})
	}
}
