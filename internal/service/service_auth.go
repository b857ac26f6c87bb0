// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/config"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/token"
	"github.com/neo-f/go-blog/internal/workers"
	"github.com/neo-f/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; repository calls run on the
// executor mailbox.
type authService struct {
	userRepository store.UserRepository
	executor       *workers.Executor

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, executor *workers.Executor, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		executor:       executor,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser hashes the password and stores the account. A taken login
// comes back as the repository's unique violation.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, apperr.BadRequest(ErrInvalidDataProvided.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	registeredUser, err := workers.Ask(ctx, a.executor, func(ctx context.Context) (models.User, error) {
		return a.userRepository.CreateUser(ctx, user)
	})
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user. An unknown login and a wrong
// password are both reported as Unauthorized.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, apperr.BadRequest(ErrInvalidDataProvided.Error())
	}

	foundUser, err := workers.Ask(ctx, a.executor, func(ctx context.Context) (models.User, error) {
		return a.userRepository.FindUserByLogin(ctx, user.Login)
	})
	if store.IsNotFound(err) {
		log.Warn().Str("login", user.Login).Msg("login for unknown user")
		return models.User{}, apperr.Unauthorized()
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrWrongPassword, apperr.Unauthorized())
	}
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	t, err := token.Generate(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return t, nil
}

// ParseToken validates a raw JWT. Failures keep their token kind so the
// caller can tell a malformed token from an expired one.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	t, err := token.Parse(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, err
	}

	return t, nil
}
