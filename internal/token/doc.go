// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the HS256 JWT access tokens handed out
// on login. Verification failures are returned as [*Error] so the transport
// layer can tell a malformed token from an expired one.
package token
