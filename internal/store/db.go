// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/migrations"
)

// Driver names registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the *sql.DB connection pool. Every repository call checks a
// connection out through [DB.Acquire] so pool failures surface as
// [*PoolError] rather than as data-store errors.
type DB struct {
	*sql.DB
	driver         string
	acquireTimeout time.Duration
	closed         atomic.Bool
	logger         *logger.Logger
}

// NewDB opens and pings the database named by cfg.DSN. The driver is chosen
// from the DSN scheme: "postgres://" and "postgresql://" use pgx, "sqlite://"
// and "file:" use go-sqlite3.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("unsupported DSN")
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewDB").Str("driver", driver).Msg("connected to database successfully")

	return newDB(conn, driver, cfg.AcquireTimeout, log), nil
}

func newDB(conn *sql.DB, driver string, acquireTimeout time.Duration, log *logger.Logger) *DB {
	return &DB{
		DB:             conn,
		driver:         driver,
		acquireTimeout: acquireTimeout,
		logger:         log,
	}
}

func parseDSN(dsn string) (driver, source string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"):
		return DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// Driver reports the database/sql driver name in use.
func (db *DB) Driver() string {
	return db.driver
}

// Acquire checks a connection out of the pool, waiting at most the configured
// acquire timeout. The caller must Close the returned connection.
func (db *DB) Acquire(ctx context.Context) (*sql.Conn, error) {
	if db.closed.Load() {
		return nil, &PoolError{Kind: PoolClosed, Err: ErrPoolClosed}
	}

	if db.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, newPoolError(err)
	}

	return conn, nil
}

// Close marks the pool closed and releases its connections.
func (db *DB) Close() error {
	db.closed.Store(true)
	return db.DB.Close()
}

// Migrate applies the embedded migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder using the placeholder format
// of the active driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
