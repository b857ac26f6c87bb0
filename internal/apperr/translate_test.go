// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apperr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neo-f/go-blog/internal/hashid"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/workers"
)

func TestFromStore(t *testing.T) {
	tests := []struct {
		name    string
		failure store.Failure
		want    *ServiceError
	}{
		{
			name:    "unique violation with detail",
			failure: store.Failure{Kind: store.KindUniqueViolation, Detail: "email already exists", Message: "duplicate key value"},
			want:    BadRequest("email already exists"),
		},
		{
			name:    "unique violation without detail",
			failure: store.Failure{Kind: store.KindUniqueViolation, Message: "duplicate key value"},
			want:    BadRequest("duplicate key value"),
		},
		{
			name:    "not found",
			failure: store.Failure{Kind: store.KindNotFound, Message: "sql: no rows in result set"},
			want:    NotFound("requested record was not found"),
		},
		{
			name:    "constraint hides detail",
			failure: store.Failure{Kind: store.KindConstraint, Detail: "Key (author_id)=(9) is not present", Message: "fk"},
			want:    InternalServerError("database"),
		},
		{
			name:    "connection",
			failure: store.Failure{Kind: store.KindConnection, Message: "connection refused"},
			want:    InternalServerError("database"),
		},
		{
			name:    "other",
			failure: store.Failure{Kind: store.KindOther, Detail: "secret", Message: "syntax error at or near"},
			want:    InternalServerError("database"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromStore(tt.failure))
		})
	}
}

func TestFromPool(t *testing.T) {
	for _, kind := range []store.PoolErrorKind{store.PoolExhausted, store.PoolClosed, store.PoolConnect} {
		assert.Equal(t, InternalServerError("pool"), FromPool(kind), kind.String())
	}
}

func TestFromToken(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want *ServiceError
	}{
		{token.InvalidToken, BadRequest("Invalid Token")},
		{token.InvalidIssuer, BadRequest("Invalid Issuer")},
		{token.Expired, Unauthorized()},
		{token.InvalidSignature, Unauthorized()},
		{token.InvalidAudience, Unauthorized()},
		{token.NotValidYet, Unauthorized()},
		{token.Other, Unauthorized()},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := FromToken(tt.kind)
			assert.Equal(t, tt.want, got)
			if got.Kind == KindUnauthorized {
				assert.Empty(t, got.Message)
			}
		})
	}
}

func TestFromMailbox(t *testing.T) {
	for _, kind := range []workers.MailboxErrorKind{workers.MailboxClosed, workers.MailboxFull, workers.MailboxTimeout} {
		assert.Equal(t, InternalServerError("mailbox"), FromMailbox(kind), kind.String())
	}
}

func TestFromEncoder(t *testing.T) {
	tests := []struct {
		kind hashid.ErrorKind
		want *ServiceError
	}{
		{hashid.AlphabetLength, InternalServerError("hashid alphabet length error")},
		{hashid.IllegalCharacter, InternalServerError("hashid illegal character error")},
		{hashid.Separator, InternalServerError("hashid separator error")},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := FromEncoder(tt.kind)
			assert.Equal(t, tt.want, got)
			assert.False(t, seen[got.Message], "tags must be distinct")
			seen[got.Message] = true
		})
	}
}

func TestTranslate_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *ServiceError
	}{
		{
			name: "postgres unique violation",
			err: &store.Error{Op: "CreateUser", Err: &pgconn.PgError{
				Code:    pgerrcode.UniqueViolation,
				Message: `duplicate key value violates unique constraint "users_login_key"`,
				Detail:  "Key (login)=(alice) already exists.",
			}},
			want: BadRequest("Key (login)=(alice) already exists."),
		},
		{
			name: "postgres foreign key violation",
			err:  &store.Error{Op: "CreatePost", Err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Detail: "Key (author_id)=(9)"}},
			want: InternalServerError("database"),
		},
		{
			name: "sqlite unique violation",
			err:  &store.Error{Op: "CreateUser", Err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
			want: &ServiceError{Kind: KindBadRequest},
		},
		{
			name: "no rows",
			err:  &store.Error{Op: "FindUserByLogin", Err: sql.ErrNoRows},
			want: NotFound("requested record was not found"),
		},
		{
			name: "store not found sentinel",
			err:  fmt.Errorf("delete: %w", store.ErrNotFound),
			want: NotFound("requested record was not found"),
		},
		{
			name: "conn done",
			err:  sql.ErrConnDone,
			want: InternalServerError("database"),
		},
		{
			name: "opaque store error",
			err:  &store.Error{Op: "ListPosts", Err: errors.New("scan failed")},
			want: InternalServerError("database"),
		},
		{
			name: "pool timeout",
			err:  &store.PoolError{Kind: store.PoolExhausted, Err: context.DeadlineExceeded},
			want: InternalServerError("pool"),
		},
		{
			name: "wrapped pool error",
			err:  fmt.Errorf("find user: %w", &store.PoolError{Kind: store.PoolClosed, Err: store.ErrPoolClosed}),
			want: InternalServerError("pool"),
		},
		{
			name: "expired token",
			err:  &token.Error{Kind: token.Expired, Err: errors.New("token is expired")},
			want: Unauthorized(),
		},
		{
			name: "malformed token",
			err:  &token.Error{Kind: token.InvalidToken, Err: errors.New("token is malformed")},
			want: BadRequest("Invalid Token"),
		},
		{
			name: "mailbox timeout hides cause",
			err:  &workers.MailboxError{Kind: workers.MailboxTimeout, Err: context.DeadlineExceeded},
			want: InternalServerError("mailbox"),
		},
		{
			name: "mailbox wins over wrapped pool error",
			err:  &workers.MailboxError{Kind: workers.MailboxFull, Err: &store.PoolError{Kind: store.PoolConnect, Err: errors.New("x")}},
			want: InternalServerError("mailbox"),
		},
		{
			name: "encoder",
			err:  &hashid.Error{Kind: hashid.Separator, Err: hashid.ErrNotSingleID},
			want: InternalServerError("hashid separator error"),
		},
		{
			name: "service error passes through",
			err:  fmt.Errorf("register: %w", NotFound("user was not found")),
			want: NotFound("user was not found"),
		},
		{
			name: "unknown error",
			err:  errors.New("something odd"),
			want: InternalServerError("internal"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.err)
			if tt.want.Message == "" && tt.want.Kind != KindUnauthorized {
				assert.Equal(t, tt.want.Kind, got.Kind)
				assert.NotEmpty(t, got.Message)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslate_ParsedTokens(t *testing.T) {
	const key = "test sign key"

	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		parseKey string
		want     *ServiceError
	}{
		{
			name:     "foreign issuer",
			issuer:   "evil",
			duration: time.Hour,
			parseKey: key,
			want:     BadRequest(MsgInvalidIssuer),
		},
		{
			name:     "expired",
			issuer:   "blog",
			duration: -time.Hour,
			parseKey: key,
			want:     Unauthorized(),
		},
		{
			name:     "expired from foreign issuer",
			issuer:   "evil",
			duration: -time.Hour,
			parseKey: key,
			want:     Unauthorized(),
		},
		{
			name:     "forged signature",
			issuer:   "blog",
			duration: time.Hour,
			parseKey: "other key",
			want:     Unauthorized(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := token.Generate(tt.issuer, 1, tt.duration, key)
			require.NoError(t, err)

			_, err = token.Parse(tok.SignedString, tt.parseKey, "blog")
			require.Error(t, err)

			got := Translate(err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Render(tt.want), Render(got))
		})
	}
}

func TestTranslate_Nil(t *testing.T) {
	assert.Nil(t, Translate(nil))
}

func TestTranslate_Idempotent(t *testing.T) {
	errs := []error{
		BadRequest("x"),
		&store.PoolError{Kind: store.PoolConnect, Err: errors.New("refused")},
		&token.Error{Kind: token.InvalidIssuer, Err: errors.New("iss")},
		errors.New("opaque"),
	}

	for _, err := range errs {
		once := Translate(err)
		twice := Translate(once)
		assert.Same(t, once, twice)
	}
}

func TestTranslate_InternalNeverLeaksDetail(t *testing.T) {
	secret := "password=hunter2 host=10.0.0.7"
	errs := []error{
		&store.Error{Op: "q", Err: &pgconn.PgError{Code: pgerrcode.SyntaxError, Message: secret, Detail: secret}},
		&store.PoolError{Kind: store.PoolConnect, Err: errors.New(secret)},
		&workers.MailboxError{Kind: workers.MailboxClosed, Err: errors.New(secret)},
		&token.Error{Kind: token.InvalidSignature, Err: errors.New(secret)},
		errors.New(secret),
	}

	for _, err := range errs {
		resp := Render(Translate(err))
		assert.NotContains(t, resp.Body, secret)
		assert.NotContains(t, string(resp.JSON()), secret)
	}
}
