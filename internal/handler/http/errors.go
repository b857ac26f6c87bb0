// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged when a protected route is called
	// without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means the auth middleware did not run before a
	// handler that needs the caller's identity.
	ErrNoUserInContext = errors.New("no user id in request context")
)

const (
	msgInvalidJSON      = "Invalid JSON was passed"
	msgInvalidPage      = "limit and offset must be non-negative integers"
	msgRouteNotFound    = "route was not found"
	defaultMaxBodyBytes = 1 << 20
)
