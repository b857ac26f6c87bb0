// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the blog
// server. It aggregates all sub-configurations and is populated by merging
// defaults, an optional .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and public-identifier settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the mailbox executor settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before environment variables are
	// parsed. A missing file is not an error.
	// Env: DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashIDSalt salts the public post identifiers.
	// Env: APP_HASHID_SALT
	HashIDSalt string `env:"HASHID_SALT"`

	// HashIDAlphabet is the character set public post identifiers are built
	// from. Must contain at least 16 distinct, non-space characters.
	// Env: APP_HASHID_ALPHABET
	HashIDAlphabet string `env:"HASHID_ALPHABET"`

	// HashIDMinLength is the minimum length of a public post identifier.
	// Env: APP_HASHID_MIN_LENGTH
	HashIDMinLength int `env:"HASHID_MIN_LENGTH"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile, when set, sends logs to a rotated file instead of stdout.
	// Env: SERVER_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// AllowedOrigins lists the CORS origins of the HTTP API. Empty allows
	// any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name. "postgres://" and "postgresql://" select
	// PostgreSQL; "sqlite://" and "file:" select SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// AcquireTimeout bounds how long a request waits for a free connection.
	// Env: STORAGE_DB_ACQUIRE_TIMEOUT
	AcquireTimeout time.Duration `env:"ACQUIRE_TIMEOUT"`
}

// Workers holds the mailbox executor settings.
type Workers struct {
	// Executors is the number of goroutines draining the mailbox.
	// Env: WORKERS_EXECUTORS
	Executors int `env:"EXECUTORS"`

	// MailboxCapacity is the number of jobs that may wait in the mailbox.
	// Env: WORKERS_MAILBOX_CAPACITY
	MailboxCapacity int `env:"MAILBOX_CAPACITY"`

	// AskTimeout bounds how long a caller waits for a job reply.
	// Env: WORKERS_ASK_TIMEOUT
	AskTimeout time.Duration `env:"ASK_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "go-blog",
			TokenDuration:   time.Hour,
			HashIDAlphabet:  "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890",
			HashIDMinLength: 8,
			Version:         "dev",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:   10,
				AcquireTimeout: 3 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			Executors:       4,
			MailboxCapacity: 64,
			AskTimeout:      5 * time.Second,
		},
		DotEnvPath: ".env",
	}
}
