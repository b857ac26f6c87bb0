// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/utils"
	"github.com/neo-f/go-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, &user) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser, http.StatusOK)
}

// issueToken answers with a fresh token both in the Authorization header
// and in the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	t, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	resp := models.AuthResponse{Token: t.SignedString}
	if t.ExpiresAt != nil {
		resp.ExpiresAt = t.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", t.SignedString))
	utils.WriteJSON(w, status, resp)
}

// decodeJSON reads the request body into dst. On failure it writes a
// BadRequest and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, defaultMaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", apperr.BadRequest(msgInvalidJSON), err), msgInvalidJSON)
		return false
	}
	return true
}
