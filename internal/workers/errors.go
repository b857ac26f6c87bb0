// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"fmt"
)

var (
	// ErrMailboxClosed is the cause of a [MailboxClosed] error.
	ErrMailboxClosed = errors.New("mailbox is closed")

	// ErrMailboxFull is the cause of a [MailboxFull] error.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrJobPanicked is returned by [Ask] when the job panics.
	ErrJobPanicked = errors.New("job panicked")
)

// MailboxErrorKind classifies a failure to deliver a job or its reply.
type MailboxErrorKind int

const (
	// MailboxClosed means the executor has been stopped.
	MailboxClosed MailboxErrorKind = iota + 1

	// MailboxFull means the mailbox is at capacity.
	MailboxFull

	// MailboxTimeout means no reply arrived before the ask deadline.
	MailboxTimeout
)

func (k MailboxErrorKind) String() string {
	switch k {
	case MailboxClosed:
		return "closed"
	case MailboxFull:
		return "full"
	case MailboxTimeout:
		return "timeout"
	}
	return fmt.Sprintf("MailboxErrorKind(%d)", int(k))
}

// MailboxError is returned by [Ask] when the mailbox itself fails. Errors
// returned by the job are never wrapped in a MailboxError.
type MailboxError struct {
	Kind MailboxErrorKind
	Err  error
}

func (e *MailboxError) Error() string {
	return fmt.Sprintf("mailbox %s: %v", e.Kind, e.Err)
}

func (e *MailboxError) Unwrap() error {
	return e.Err
}
