// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/neo-f/go-blog/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}, nil
}
