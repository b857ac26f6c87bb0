// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/neo-f/go-blog/internal/apperr"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler. A route called with a method it does not serve is reported as
// missing, so callers cannot probe which paths exist.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	apperr.Write(w, apperr.NotFound(msgRouteNotFound))
}
