// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background goroutines of the server. Its main
// worker is the [Executor], a mailbox that serializes repository calls onto a
// fixed set of goroutines.
package workers

// Worker is a background component with an explicit lifecycle.
//
// Run starts the worker and returns without blocking. Stop shuts it down and
// returns once every goroutine it started has exited. Both must be safe to
// call more than once.
type Worker interface {
	Run()
	Stop()
}
