// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyPostgres attempts to unwrap err as a *pgconn.PgError and delegates
// to [ClassifyPgError].
func classifyPostgres(err error) (Failure, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Failure{}, false
	}
	return ClassifyPgError(pgErr), true
}

// ClassifyPgError maps a *pgconn.PgError to a [Failure] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [KindUniqueViolation]
//   - P0002 no_data_found → [KindNotFound]
//   - Class 23 (other integrity violations) → [KindConstraint]
//   - Class 08 and 57P03 → [KindConnection]
//
// Any code not listed above is classified as [KindOther].
func ClassifyPgError(pgErr *pgconn.PgError) Failure {
	f := Failure{Detail: pgErr.Detail, Message: pgErr.Message}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		f.Kind = KindUniqueViolation

	case pgerrcode.NoDataFound:
		f.Kind = KindNotFound

	// Class 23: integrity constraint violations
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation,
		pgerrcode.ExclusionViolation:
		f.Kind = KindConstraint

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.CannotConnectNow:
		f.Kind = KindConnection

	default:
		f.Kind = KindOther
	}

	return f
}
