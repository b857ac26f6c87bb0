// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/hashid"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/workers"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices builds the validated services on top of storages. db is used
// for health checks and may be nil.
func NewServices(storages *store.Storages, executor *workers.Executor, db Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if storages == nil || executor == nil {
		return nil, ErrNilDependency
	}

	encoder, err := hashid.NewEncoder(cfg.App.HashIDSalt, cfg.App.HashIDAlphabet, cfg.App.HashIDMinLength)
	if err != nil {
		logger.Err(err).Str("func", "NewServices").Msg("hashid encoder configuration is invalid")
		return nil, fmt.Errorf("error creating hashid encoder: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, db, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, executor, cfg.App, logger)),
		PostService:    NewPostValidationService().Wrap(NewPostService(storages.PostRepository, executor, encoder, logger)),
		AppInfoService: appInfo,
	}, nil
}
