// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins configures CORS. Empty allows any origin.
	allowedOrigins []string

	// requestTimeout bounds every request context. Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, allowedOrigins []string, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: allowedOrigins,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// writeError logs the raw failure and writes its rendered form.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := apperr.Write(w, err)

	log := logger.FromRequest(r)
	if resp.Status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.Status).Msg(msg)
		return
	}
	log.Warn().Err(err).Int("status", resp.Status).Msg(msg)
}
