// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hashid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

func newTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	enc, err := NewEncoder("salt", testAlphabet, 8)
	require.NoError(t, err)
	return enc
}

func TestNewEncoder_InvalidAlphabet(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		want     ErrorKind
		cause    error
	}{
		{"too short", "abcdef", AlphabetLength, ErrShortAlphabet},
		{"fifteen chars", "abcdefghijklmno", AlphabetLength, ErrShortAlphabet},
		{"space", "abcdefghijklmnop qrstuvwxyz", IllegalCharacter, ErrAlphabetWhitespace},
		{"tab", "abcdefghijklmnop\tqrstuvwxyz", IllegalCharacter, ErrAlphabetWhitespace},
		{"duplicate", "abcdefghijklmnopa", IllegalCharacter, ErrAlphabetDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncoder("salt", tt.alphabet, 0)
			require.Error(t, err)

			var hErr *Error
			require.ErrorAs(t, err, &hErr)
			assert.Equal(t, tt.want, hErr.Kind)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestNewEncoder_DefaultAlphabet(t *testing.T) {
	enc, err := NewEncoder("salt", "", 0)
	require.NoError(t, err)

	hash, err := enc.Encode(42)
	require.NoError(t, err)
	id, err := enc.Decode(hash)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestEncoder_RoundTrip(t *testing.T) {
	enc := newTestEncoder(t)

	for _, id := range []int64{0, 1, 7, 1000, 1 << 40} {
		hash, err := enc.Encode(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(hash), 8)

		got, err := enc.Decode(hash)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestEncoder_SaltChangesHash(t *testing.T) {
	a, err := NewEncoder("one", testAlphabet, 8)
	require.NoError(t, err)
	b, err := NewEncoder("two", testAlphabet, 8)
	require.NoError(t, err)

	ha, err := a.Encode(5)
	require.NoError(t, err)
	hb, err := b.Encode(5)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestEncoder_EncodeNegative(t *testing.T) {
	_, err := newTestEncoder(t).Encode(-1)
	assert.ErrorIs(t, err, ErrNegativeID)
}

func TestEncoder_DecodeIllegalCharacter(t *testing.T) {
	enc := newTestEncoder(t)

	for _, hash := range []string{"abc-def", "abc def", "post/1", "ü"} {
		_, err := enc.Decode(hash)

		var hErr *Error
		require.ErrorAs(t, err, &hErr, hash)
		assert.Equal(t, IllegalCharacter, hErr.Kind, hash)
	}
}

func TestEncoder_DecodeSeparator(t *testing.T) {
	enc := newTestEncoder(t)

	multi, err := enc.h.EncodeInt64([]int64{1, 2})
	require.NoError(t, err)

	other, err := NewEncoder("different", testAlphabet, 8)
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"two ids", multi},
		{"foreign salt", mustEncode(t, other, 99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Decode(tt.hash)

			var hErr *Error
			require.ErrorAs(t, err, &hErr)
			assert.Equal(t, Separator, hErr.Kind)
			assert.ErrorIs(t, err, ErrNotSingleID)
		})
	}
}

func mustEncode(t *testing.T, enc *Encoder, id int64) string {
	t.Helper()
	hash, err := enc.Encode(id)
	require.NoError(t, err)
	return hash
}
