// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import "fmt"

// Kind enumerates the caller-facing error categories. The set is closed:
// every upstream failure is reduced to exactly one of these values.
type Kind int

const (
	// KindBadRequest is a caller-correctable input or constraint violation.
	KindBadRequest Kind = iota + 1

	// KindUnauthorized means identity could not be established or the
	// presented token is unusable.
	KindUnauthorized

	// KindNotFound means the referenced resource does not exist.
	KindNotFound

	// KindInternalServerError covers every failure not attributable to the
	// caller.
	KindInternalServerError
)

// String returns the name of the category.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindInternalServerError:
		return "InternalServerError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// unauthorizedBody is the fixed body rendered for [KindUnauthorized].
const unauthorizedBody = "Unauthorized"

// ServiceError is the value handed from the translation boundary to the
// transport layer. Message is empty for [KindUnauthorized].
type ServiceError struct {
	Kind    Kind
	Message string
}

// BadRequest returns a [KindBadRequest] error carrying msg.
func BadRequest(msg string) *ServiceError {
	return &ServiceError{Kind: KindBadRequest, Message: msg}
}

// Unauthorized returns a [KindUnauthorized] error. It never carries detail.
func Unauthorized() *ServiceError {
	return &ServiceError{Kind: KindUnauthorized}
}

// NotFound returns a [KindNotFound] error carrying msg.
func NotFound(msg string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

// InternalServerError returns a [KindInternalServerError] error carrying a
// fixed diagnostic tag.
func InternalServerError(msg string) *ServiceError {
	return &ServiceError{Kind: KindInternalServerError, Message: msg}
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e == nil {
		return "Internal Server Error: " + TagInternal
	}
	switch e.Kind {
	case KindBadRequest:
		return "BadRequest: " + e.Message
	case KindUnauthorized:
		return unauthorizedBody
	case KindNotFound:
		return "Not Found: " + e.Message
	case KindInternalServerError:
		return "Internal Server Error: " + e.Message
	}
	return e.Kind.String() + ": " + e.Message
}

// Is reports whether target is a *ServiceError of the same Kind, so callers
// can write errors.Is(err, apperr.Unauthorized()).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	if e == nil || t == nil {
		return e == t
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}
