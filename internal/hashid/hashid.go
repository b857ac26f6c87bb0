// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hashid turns database ids into short public identifiers and back.
package hashid

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	hashids "github.com/speps/go-hashids/v2"
)

// MinAlphabetLength is the shortest alphabet an [Encoder] accepts.
const MinAlphabetLength = 16

// Encoder encodes int64 ids with a salted alphabet. It is immutable after
// construction and safe for concurrent use.
type Encoder struct {
	h        *hashids.HashID
	alphabet map[rune]struct{}
}

// NewEncoder validates alphabet and builds an encoder. An empty alphabet
// selects the library default.
func NewEncoder(salt, alphabet string, minLength int) (*Encoder, error) {
	if alphabet == "" {
		alphabet = hashids.DefaultAlphabet
	}

	set, err := checkAlphabet(alphabet)
	if err != nil {
		return nil, err
	}

	h, err := hashids.NewWithData(&hashids.HashIDData{
		Alphabet:  alphabet,
		MinLength: minLength,
		Salt:      salt,
	})
	if err != nil {
		return nil, &Error{Kind: IllegalCharacter, Err: err}
	}

	return &Encoder{h: h, alphabet: set}, nil
}

func checkAlphabet(alphabet string) (map[rune]struct{}, error) {
	if utf8.RuneCountInString(alphabet) < MinAlphabetLength {
		return nil, &Error{Kind: AlphabetLength, Err: ErrShortAlphabet}
	}

	set := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		if unicode.IsSpace(r) {
			return nil, &Error{Kind: IllegalCharacter, Err: ErrAlphabetWhitespace}
		}
		if _, dup := set[r]; dup {
			return nil, &Error{Kind: IllegalCharacter, Err: fmt.Errorf("%w: %q", ErrAlphabetDuplicate, r)}
		}
		set[r] = struct{}{}
	}

	return set, nil
}

// Encode returns the public identifier of id.
func (e *Encoder) Encode(id int64) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	hash, err := e.h.EncodeInt64([]int64{id})
	if err != nil {
		return "", fmt.Errorf("error encoding id %d: %w", id, err)
	}
	return hash, nil
}

// Decode returns the id encoded in hash. Failures are [*Error] with kind
// [IllegalCharacter] or [Separator].
func (e *Encoder) Decode(hash string) (int64, error) {
	if i := strings.IndexFunc(hash, e.foreign); i >= 0 {
		return 0, &Error{Kind: IllegalCharacter, Err: fmt.Errorf("%w at offset %d", ErrForeignCharacter, i)}
	}

	ids, err := e.h.DecodeInt64WithError(hash)
	if err != nil {
		return 0, &Error{Kind: Separator, Err: fmt.Errorf("%w: %w", ErrNotSingleID, err)}
	}
	if len(ids) != 1 {
		return 0, &Error{Kind: Separator, Err: fmt.Errorf("%w: got %d ids", ErrNotSingleID, len(ids))}
	}

	return ids[0], nil
}

func (e *Encoder) foreign(r rune) bool {
	_, ok := e.alphabet[r]
	return !ok
}
