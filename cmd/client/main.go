// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/neo-f/go-blog/internal/adapter"
	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-blog-client").WithLevel(zerolog.WarnLevel)

	cfg, args, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if args[0] == "build-info" {
		printBuildInfo()
		return
	}

	client, err := adapter.NewHTTPBlogClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blog client")
	}
	client.SetToken(cfg.Token)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout)
	defer cancel()

	if err = run(ctx, client, args[0], args[1:]); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the process exit code.
func report(err error) int {
	if errors.Is(err, errUsage) {
		usage()
		return 2
	}

	var svcErr *apperr.ServiceError
	if errors.As(err, &svcErr) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", svcErr.Kind, apperr.Render(svcErr).Body)
		return 1
	}

	fmt.Fprintln(os.Stderr, err)
	return 1
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: go-blog-client [-s address] [-t timeout] <command> [args]

commands:
  register -login L -password P [-name N]
  login -login L -password P
  posts [-limit N] [-offset N]
  post <slug>
  publish -title T -body B
  delete <slug>
  version
  build-info

Authenticated commands read the token from CLIENT_TOKEN.
`)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
