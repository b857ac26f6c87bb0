// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/neo-f/go-blog/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, http.StatusOK, serverVersion)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AppInfoService.Health(ctx); err != nil {
		writeError(w, r, err, "health check failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	})
}
