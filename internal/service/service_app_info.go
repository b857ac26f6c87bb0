// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
)

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService. db may be nil, in which
// case Health always succeeds.
func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings the database.
func (s *appInfoService) Health(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
