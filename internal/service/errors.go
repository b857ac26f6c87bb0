// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrWrongPassword         = errors.New("wrong password")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilDependency         = errors.New("service dependency is nil")
)

const msgPostNotFound = "post was not found"
