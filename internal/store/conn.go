// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// queryRow runs a single-row query on a pooled connection and scans the
// result into dest.
func (db *DB) queryRow(ctx context.Context, op, query string, args []any, dest ...any) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err = conn.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		return wrapError(op, err)
	}
	return nil
}

// query runs a multi-row query on a pooled connection, calling scan once per
// row.
func (db *DB) query(ctx context.Context, op, query string, args []any, scan func(*sql.Rows) error) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return wrapError(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return wrapError(op, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
	}
	if err = rows.Err(); err != nil {
		return wrapError(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}
	return nil
}

// exec runs a statement on a pooled connection and returns the number of
// affected rows.
func (db *DB) exec(ctx context.Context, op, query string, args []any) (int64, error) {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapError(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, wrapError(op, err)
	}
	return affected, nil
}

func buildError(op string, err error) error {
	return wrapError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
}
