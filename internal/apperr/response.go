// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"encoding/json"
	"net/http"
	"strings"
)

// FromResponse rebuilds the [ServiceError] behind a rendered HTTP response.
// It returns nil for 2xx statuses. Statuses outside the taxonomy map to
// InternalServerError carrying the raw body.
func FromResponse(status int, body []byte) *ServiceError {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := decodeBody(body)

	switch status {
	case http.StatusBadRequest:
		return BadRequest(msg)
	case http.StatusUnauthorized:
		return Unauthorized()
	case http.StatusNotFound:
		return NotFound(msg)
	default:
		return InternalServerError(msg)
	}
}

func decodeBody(body []byte) string {
	var msg string
	if err := json.Unmarshal(body, &msg); err == nil {
		return msg
	}
	return strings.TrimSpace(string(body))
}
