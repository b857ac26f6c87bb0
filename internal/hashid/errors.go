// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hashid

import (
	"errors"
	"fmt"
)

var (
	// ErrShortAlphabet is the cause of an [AlphabetLength] error.
	ErrShortAlphabet = errors.New("alphabet must contain at least 16 characters")

	// ErrAlphabetWhitespace is the cause of an [IllegalCharacter] error raised
	// while building an encoder.
	ErrAlphabetWhitespace = errors.New("alphabet may not contain whitespace")

	// ErrAlphabetDuplicate is the cause of an [IllegalCharacter] error raised
	// while building an encoder.
	ErrAlphabetDuplicate = errors.New("alphabet may not contain duplicate characters")

	// ErrForeignCharacter is the cause of an [IllegalCharacter] error raised
	// while decoding.
	ErrForeignCharacter = errors.New("hash contains a character outside the alphabet")

	// ErrNotSingleID is the cause of a [Separator] error: the hash does not
	// split back into exactly one id that re-encodes to the same hash.
	ErrNotSingleID = errors.New("hash does not decode to a single id")

	// ErrNegativeID is returned by [Encoder.Encode] for ids below zero.
	ErrNegativeID = errors.New("negative ids cannot be encoded")
)

// ErrorKind classifies an encoder failure.
type ErrorKind int

const (
	// AlphabetLength means the configured alphabet is too short.
	AlphabetLength ErrorKind = iota + 1

	// IllegalCharacter means the alphabet or a hash holds a character that
	// cannot be used.
	IllegalCharacter

	// Separator means a hash splits into the wrong number of segments.
	Separator
)

func (k ErrorKind) String() string {
	switch k {
	case AlphabetLength:
		return "alphabet_length"
	case IllegalCharacter:
		return "illegal_character"
	case Separator:
		return "separator"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an encoder failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hashid %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
