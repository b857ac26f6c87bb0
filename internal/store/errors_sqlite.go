// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// classifySQLite maps a sqlite3.Error to a [Failure] by its extended result
// code. SQLite has no separate detail text, so Detail stays empty and the
// driver message ("UNIQUE constraint failed: users.login") becomes Message.
func classifySQLite(err error) (Failure, bool) {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Failure{}, false
	}

	f := Failure{Message: liteErr.Error()}

	switch {
	case liteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		f.Kind = KindUniqueViolation
	case liteErr.Code == sqlite3.ErrConstraint:
		f.Kind = KindConstraint
	case liteErr.Code == sqlite3.ErrCantOpen,
		liteErr.Code == sqlite3.ErrBusy,
		liteErr.Code == sqlite3.ErrLocked:
		f.Kind = KindConnection
	default:
		f.Kind = KindOther
	}

	return f, true
}
