// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyAddress     = errors.New("empty server address")
	ErrRequestFailed    = errors.New("request to the blog server failed")
	ErrDecodingResponse = errors.New("error decoding server response")
	ErrNoToken          = errors.New("no token in server response")
)
