// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidParams is returned by [Generate] when the issuer, duration or
	// sign key is missing.
	ErrInvalidParams = errors.New("invalid params for generating JWT token")

	// ErrEmptySubject is returned by [Parse] when the sub claim is empty.
	ErrEmptySubject = errors.New("empty subject")

	// ErrInvalidSubject is returned by [Parse] when the sub claim is not a
	// base-10 user id.
	ErrInvalidSubject = errors.New("subject is not a user id")

	// ErrInvalidAuthHeader is returned by [ParseBearer].
	ErrInvalidAuthHeader = errors.New("invalid authorization header")
)

// Kind classifies a token verification failure.
type Kind int

const (
	// InvalidToken means the token could not be decoded at all.
	InvalidToken Kind = iota + 1

	// InvalidIssuer means the iss claim does not name this service.
	InvalidIssuer

	// Expired means the exp claim is in the past.
	Expired

	// InvalidSignature means the signature or signing method did not verify.
	InvalidSignature

	// InvalidAudience means the aud claim does not match.
	InvalidAudience

	// NotValidYet means the nbf claim is in the future.
	NotValidYet

	// Other is any failure without a more specific classification.
	Other
)

func (k Kind) String() string {
	switch k {
	case InvalidToken:
		return "invalid_token"
	case InvalidIssuer:
		return "invalid_issuer"
	case Expired:
		return "expired"
	case InvalidSignature:
		return "invalid_signature"
	case InvalidAudience:
		return "invalid_audience"
	case NotValidYet:
		return "not_valid_yet"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a token verification failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify maps a jwt parse error onto a [Kind]. jwt may join several claim
// errors into one; the first match in the order below wins. Time claims are
// checked before the issuer, so an expired token from a foreign issuer is
// Expired.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, ErrEmptySubject),
		errors.Is(err, ErrInvalidSubject):
		return InvalidToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return InvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return Expired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return NotValidYet
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return InvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return InvalidAudience
	default:
		return Other
	}
}

func newError(err error) *Error {
	return &Error{Kind: Classify(err), Err: err}
}
