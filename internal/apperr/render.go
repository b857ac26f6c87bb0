// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"encoding/json"
	"net/http"
)

// Response is the transport-neutral rendering of a [ServiceError].
type Response struct {
	Status int
	Body   string
}

// Render maps e to its status and body. A nil error renders as
// InternalServerError("internal").
func Render(e *ServiceError) Response {
	if e == nil {
		return Response{Status: http.StatusInternalServerError, Body: TagInternal}
	}

	switch e.Kind {
	case KindBadRequest:
		return Response{Status: http.StatusBadRequest, Body: e.Message}
	case KindUnauthorized:
		return Response{Status: http.StatusUnauthorized, Body: unauthorizedBody}
	case KindNotFound:
		return Response{Status: http.StatusNotFound, Body: e.Message}
	case KindInternalServerError:
		return Response{Status: http.StatusInternalServerError, Body: e.Message}
	}
	return Response{Status: http.StatusInternalServerError, Body: TagInternal}
}

// JSON returns the body encoded as a JSON string.
func (r Response) JSON() []byte {
	b, _ := json.Marshal(r.Body)
	return b
}

// Write renders err with [Translate] and [Render] and writes it to w.
func Write(w http.ResponseWriter, err error) Response {
	resp := Render(Translate(err))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.JSON())

	return resp
}
