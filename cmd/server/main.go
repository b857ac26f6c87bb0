// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/handler"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/server"
	"github.com/neo-f/go-blog/internal/service"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	if cfg.Server.LogFile != "" {
		log = logger.NewFileLogger("go-blog-server", cfg.Server.LogFile)
	}

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	executor := workers.NewExecutor(cfg.Workers, log)
	background := workers.NewWorkers(executor)
	background.Run()
	defer background.Stop()

	services, err := service.NewServices(storages, executor, db, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
