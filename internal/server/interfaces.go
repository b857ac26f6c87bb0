// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is a listener with a blocking run and a graceful stop. The HTTP and
// gRPC listeners implement it, and so does the combined server returned by
// [NewServer].
type Server interface {
	// RunServer serves until the listener is stopped or fails.
	RunServer()

	// Shutdown stops accepting work and waits for in-flight requests.
	Shutdown()
}
