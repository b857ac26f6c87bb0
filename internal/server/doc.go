// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the blog's HTTP and gRPC listeners side by side and
// stops both on SIGINT, SIGTERM or SIGQUIT.
package server
