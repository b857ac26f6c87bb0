// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// A missing or unparsable "Authorization" header is rejected as
// Unauthorized. A bearer token that fails validation is rendered by its
// token kind: malformed tokens and foreign issuers are BadRequest, every
// other failure is Unauthorized. On success the user id is stored in the
// request context under [utils.WithUserID].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.FromRequest(r).Warn().Err(ErrEmptyAuthorizationHeader).Send()
			apperr.Write(w, apperr.Unauthorized())
			return
		}

		tokenString, err := token.ParseBearer(authHeader)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Send()
			apperr.Write(w, apperr.Unauthorized())
			return
		}

		ctx := r.Context()
		t, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "error occurred during parsing token")
			return
		}

		ctx = utils.WithUserID(ctx, t.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
