// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated UserID.
// CreatedAt is set here when the caller leaves it zero.
//
// A taken login surfaces as a unique violation wrapped in [*Error].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "CreateUser"
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.createUserQuery(user)
	if err != nil {
		return models.User{}, buildError(op, err)
	}

	if err = r.db.queryRow(ctx, op, query, args, &user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error creating user")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByLogin returns the user whose login matches. A missing user is
// returned as [*Error] wrapping [sql.ErrNoRows].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "FindUserByLogin", sq.Eq{"login": login})
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findUserQuery(where)
	if err != nil {
		return models.User{}, buildError(op, err)
	}

	var user models.User
	err = r.db.queryRow(ctx, op, query, args, &user.UserID, &user.Login, &user.PasswordHash, &user.Name, &user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}
