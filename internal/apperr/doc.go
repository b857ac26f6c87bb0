// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperr is the error-translation boundary of the server.
//
// Failures produced by the data store, the connection pool, the token
// verifier, the worker mailbox and the id encoder are reduced to one
// [ServiceError] by [Translate], which the transport layers turn into a wire
// response with [Render] (HTTP) or GRPCStatus (gRPC).
//
// BadRequest and NotFound messages may echo backend detail such as a
// constraint description. Unauthorized and InternalServerError bodies are
// always fixed strings.
//
// Everything in this package is pure and safe for concurrent use.
package apperr
