// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"errors"

	"github.com/neo-f/go-blog/internal/hashid"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/workers"
)

// Fixed messages and diagnostic tags.
const (
	MsgRecordNotFound = "requested record was not found"
	MsgInvalidToken   = "Invalid Token"
	MsgInvalidIssuer  = "Invalid Issuer"

	TagDatabase             = "database"
	TagPool                 = "pool"
	TagMailbox              = "mailbox"
	TagInternal             = "internal"
	TagHashidAlphabetLength = "hashid alphabet length error"
	TagHashidIllegalChar    = "hashid illegal character error"
	TagHashidSeparator      = "hashid separator error"
)

// Translate reduces err to a [ServiceError]. An error that already is (or
// wraps) a ServiceError is returned as is. Otherwise the mailbox, pool,
// token, encoder and data-store domains are tried in that order, and an
// error from none of them becomes InternalServerError("internal").
//
// Translate returns nil for a nil error. A typed-nil *ServiceError is not
// nil as an error and becomes InternalServerError("internal").
func Translate(err error) *ServiceError {
	if err == nil {
		return nil
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		if svcErr == nil {
			return InternalServerError(TagInternal)
		}
		return svcErr
	}

	var mbErr *workers.MailboxError
	if errors.As(err, &mbErr) {
		return FromMailbox(mbErr.Kind)
	}

	var poolErr *store.PoolError
	if errors.As(err, &poolErr) {
		return FromPool(poolErr.Kind)
	}

	var tokErr *token.Error
	if errors.As(err, &tokErr) {
		return FromToken(tokErr.Kind)
	}

	var hashErr *hashid.Error
	if errors.As(err, &hashErr) {
		return FromEncoder(hashErr.Kind)
	}

	if f, ok := store.Classify(err); ok {
		return FromStore(f)
	}

	return InternalServerError(TagInternal)
}

// FromStore translates a classified data-store failure. A unique violation
// echoes the backend detail, falling back to its message.
func FromStore(f store.Failure) *ServiceError {
	switch f.Kind {
	case store.KindUniqueViolation:
		if f.Detail != "" {
			return BadRequest(f.Detail)
		}
		return BadRequest(f.Message)
	case store.KindNotFound:
		return NotFound(MsgRecordNotFound)
	case store.KindOther, store.KindConstraint, store.KindConnection:
		return InternalServerError(TagDatabase)
	}
	return InternalServerError(TagDatabase)
}

// FromPool translates a pool acquisition failure. All kinds collapse.
func FromPool(kind store.PoolErrorKind) *ServiceError {
	switch kind {
	case store.PoolExhausted, store.PoolClosed, store.PoolConnect:
		return InternalServerError(TagPool)
	}
	return InternalServerError(TagPool)
}

// FromToken translates a token verification failure. Only malformed tokens
// and foreign issuers are reported as bad requests; every other kind is
// Unauthorized.
func FromToken(kind token.Kind) *ServiceError {
	switch kind {
	case token.InvalidToken:
		return BadRequest(MsgInvalidToken)
	case token.InvalidIssuer:
		return BadRequest(MsgInvalidIssuer)
	case token.Expired, token.InvalidSignature, token.InvalidAudience, token.NotValidYet, token.Other:
		return Unauthorized()
	}
	return Unauthorized()
}

// FromMailbox translates a mailbox delivery failure. All kinds collapse.
func FromMailbox(kind workers.MailboxErrorKind) *ServiceError {
	switch kind {
	case workers.MailboxClosed, workers.MailboxFull, workers.MailboxTimeout:
		return InternalServerError(TagMailbox)
	}
	return InternalServerError(TagMailbox)
}

// FromEncoder translates an id encoder failure. Each kind keeps its own tag.
func FromEncoder(kind hashid.ErrorKind) *ServiceError {
	switch kind {
	case hashid.AlphabetLength:
		return InternalServerError(TagHashidAlphabetLength)
	case hashid.IllegalCharacter:
		return InternalServerError(TagHashidIllegalChar)
	case hashid.Separator:
		return InternalServerError(TagHashidSeparator)
	}
	return InternalServerError(TagInternal)
}
