// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the blog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging and authentication are handled here
// before requests are delegated to the service layer. Every failure leaves
// the package through [apperr.Write], so clients only ever see the four
// rendered error categories.
package http
