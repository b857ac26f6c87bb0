// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the blog server.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Token is the bearer token used by commands that need a signed-in user.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// GetClientConfig builds and validates the client configuration from
// environment variables, overridden by the -s and -t flags. The arguments
// left after the flags (the client command) are returned alongside.
func GetClientConfig() (*ClientConfig, []string, error) {
	return parseClientConfig(os.Args[1:])
}

func parseClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}

	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("go-blog-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", cfg.Adapter.HTTPAddress, "Server base address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", cfg.Adapter.RequestTimeout, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
