// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/validators"
	"github.com/neo-f/go-blog/models"
)

// validate runs v over obj and turns a field failure into BadRequest.
func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	err := v.Validate(ctx, obj, fields...)
	if err == nil {
		return nil
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fmt.Errorf("%w: %w", apperr.BadRequest(fieldErr.Message), err)
	}
	return fmt.Errorf("validation failed: %w", err)
}

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := validate(ctx, v.validator, user, "Login", "Name", "Password"); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registration: %w", err)
	}

	return v.inner.RegisterUser(ctx, user)
}

// Login only checks the login format. Password rules are not enforced here
// so that a short password is reported like any other wrong password.
func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := validate(ctx, v.validator, user, "Login"); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before login: %w", err)
	}

	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}

type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewStructValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := validate(ctx, v.validator, post, "Title", "Body"); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) GetPost(ctx context.Context, slug string) (models.Post, error) {
	return v.inner.GetPost(ctx, slug)
}

func (v *PostValidationService) ListPosts(ctx context.Context, page models.Page) (models.PostList, error) {
	if page.Limit == 0 {
		page.Limit = models.DefaultPage.Limit
	}
	if err := validate(ctx, v.validator, page); err != nil {
		return models.PostList{}, fmt.Errorf("error during page validation: %w", err)
	}

	return v.inner.ListPosts(ctx, page)
}

func (v *PostValidationService) DeletePost(ctx context.Context, userID int64, slug string) error {
	return v.inner.DeletePost(ctx, userID, slug)
}

func (v *PostValidationService) Wrap(wrapper PostService) PostService {
	v.inner = wrapper
	return v
}
