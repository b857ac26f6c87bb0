// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package token

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/neo-f/go-blog/models"
)

// Generate creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// All parameters are required. A negative duration is accepted and yields an
// already expired token.
func Generate(issuer string, userID int64, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || duration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	return sign(claims, signKey)
}

func sign(claims *jwt.RegisteredClaims, signKey string) (models.Token, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: t, RegisteredClaims: *claims, SignedString: signed}, nil
}

// Parse verifies raw against signKey and issuer and extracts the user id
// from the sub claim. Any failure is returned as [*Error].
func Parse(raw, signKey, issuer string) (models.Token, error) {
	claims := &models.Token{}
	t, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, newError(err)
	}

	if claims.Subject == "" {
		return models.Token{}, newError(ErrEmptySubject)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, newError(fmt.Errorf("%w: %w", ErrInvalidSubject, err))
	}

	return models.Token{
		Token:            t,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     raw,
		UserID:           userID,
	}, nil
}

// ParseBearer extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearer(header string) (string, error) {
	scheme, raw, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidAuthHeader
	}
	return raw, nil
}
