// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup or delete targets a row that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnsupportedDSN is returned by [NewDB] when the DSN scheme does not
	// name a supported driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNilDB is returned by [NewStorages] when no database is supplied.
	ErrNilDB = errors.New("database is nil")
)

// Low-level database operation errors. These are wrapped into [*Error] by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Error is the data-store failure value returned by repositories. Op names the
// repository operation; Err is the driver or sentinel cause.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError tags err with the repository operation. Pool failures pass
// through untouched so they keep their own domain.
func wrapError(op string, err error) error {
	var poolErr *PoolError
	if errors.As(err, &poolErr) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// ErrorKind classifies a data-store failure.
type ErrorKind int

const (
	// KindOther is any failure without a more specific classification.
	KindOther ErrorKind = iota

	// KindUniqueViolation is a uniqueness or primary-key constraint violation.
	KindUniqueViolation

	// KindNotFound means the requested record does not exist.
	KindNotFound

	// KindConstraint is any other integrity constraint violation
	// (not-null, foreign key, check).
	KindConstraint

	// KindConnection is a lost or refused connection reported by the backend.
	KindConnection
)

func (k ErrorKind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindUniqueViolation:
		return "unique_violation"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	case KindConnection:
		return "connection"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Failure is the classified view of a data-store error. Detail and Message
// are the backend's own texts (empty when the backend supplies none).
type Failure struct {
	Kind    ErrorKind
	Detail  string
	Message string
}

// Classify inspects err and reports its data-store classification. ok is
// false when err does not originate from the data store at all.
func Classify(err error) (f Failure, ok bool) {
	if err == nil {
		return Failure{}, false
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return Failure{Kind: KindNotFound, Message: err.Error()}, true
	}

	if f, ok := classifyPostgres(err); ok {
		return f, true
	}
	if f, ok := classifySQLite(err); ok {
		return f, true
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return Failure{Kind: KindConnection, Message: err.Error()}, true
	}

	var storeErr *Error
	if errors.As(err, &storeErr) {
		return Failure{Kind: KindOther, Message: err.Error()}, true
	}

	return Failure{}, false
}

// PoolErrorKind classifies a connection-pool acquisition failure.
type PoolErrorKind int

const (
	// PoolExhausted means no connection became free before the acquire
	// deadline.
	PoolExhausted PoolErrorKind = iota + 1

	// PoolClosed means the pool has been shut down.
	PoolClosed

	// PoolConnect means the driver failed to open a new connection.
	PoolConnect
)

func (k PoolErrorKind) String() string {
	switch k {
	case PoolExhausted:
		return "exhausted"
	case PoolClosed:
		return "closed"
	case PoolConnect:
		return "connect"
	}
	return fmt.Sprintf("PoolErrorKind(%d)", int(k))
}

// ErrPoolClosed is the cause carried by a [PoolClosed] error.
var ErrPoolClosed = errors.New("connection pool is closed")

// PoolError is returned by [DB.Acquire] when a connection cannot be checked
// out of the pool.
type PoolError struct {
	Kind PoolErrorKind
	Err  error
}

func (e *PoolError) Error() string {
	return fmt.Sprintf("acquire connection (%s): %v", e.Kind, e.Err)
}

func (e *PoolError) Unwrap() error {
	return e.Err
}

func newPoolError(err error) *PoolError {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &PoolError{Kind: PoolExhausted, Err: err}
	case errors.Is(err, ErrPoolClosed), strings.Contains(err.Error(), "database is closed"):
		return &PoolError{Kind: PoolClosed, Err: err}
	default:
		return &PoolError{Kind: PoolConnect, Err: err}
	}
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
