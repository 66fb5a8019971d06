package base64

import (
	"errors"
	"fmt"

	"github.com/thesimj/jBase64/internal/subtle"
)

var (
	// ErrMissingArgument is returned when a required argument is
	// nil or when the Alphabet is not one of Standard and URLSafe.
	ErrMissingArgument = errors.New("base64: missing argument")

	// ErrEmptyInput is returned by Encode when the input has zero
	// length.
	ErrEmptyInput = errors.New("base64: input is empty")

	// ErrValidation is returned when the input does not match the
	// alphabet's canonical pattern.
	ErrValidation = errors.New("base64: input string validation error")

	// ErrCorrupt is returned when the input was not validated and
	// cannot be decoded. It wraps ErrValidation.
	ErrCorrupt = fmt.Errorf("%w: input is corrupt", ErrValidation)
)

// text is Base64-encoded input.
type text interface {
	~string | ~[]byte
}

// EncodedLen returns the length of the padded Base64 encoding of
// n source bytes.
func EncodedLen(n int) int {
	if n%3 == 0 {
		return n / 3 * 4
	}
	return n/3*4 + 4
}

// DecodedLen returns the maximum number of bytes n characters of
// Base64-encoded text decode to.
func DecodedLen(n int) int {
	return n * 3 / 4
}

// Encode returns the Base64 encoding of src using the alphabet
// a. The output is always padded.
//
// Encode returns ErrMissingArgument if src is nil or a is not a
// valid Alphabet, and ErrEmptyInput if src is empty.
func Encode(src []byte, a Alphabet) (string, error) {
	if src == nil || !a.valid() {
		return "", ErrMissingArgument
	}
	if len(src) == 0 {
		return "", ErrEmptyInput
	}

	table := a.Table()
	dst := make([]byte, EncodedLen(len(src)))
	dst[len(dst)-1] = table[64]
	dst[len(dst)-2] = table[64]

	// Convert 3 -> 4.
	j := 0
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[j+0] = table[v>>18&0x3f]
		dst[j+1] = table[v>>12&0x3f]
		dst[j+2] = table[v>>6&0x3f]
		dst[j+3] = table[v&0x3f]
		src = src[3:]
		j += 4
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[j+0] = table[v>>18&0x3f]
		dst[j+1] = table[v>>12&0x3f]
		dst[j+2] = table[v>>6&0x3f]
	case 1:
		v := uint(src[0]) << 16
		dst[j+0] = table[v>>18&0x3f]
		dst[j+1] = table[v>>12&0x3f]
	}
	return string(dst), nil
}

// Decode decodes the Base64-encoded src using the alphabet a.
//
// If validate is true, src must match a.Pattern(); otherwise
// Decode returns ErrValidation without examining src further.
// If validate is false, src is decoded as is and ErrCorrupt is
// returned if it contains a character outside of both alphabets
// or padding in an impossible position.
//
// Decode returns ErrMissingArgument if src is nil or a is not a
// valid Alphabet. It never returns partially decoded data.
func Decode(src []byte, a Alphabet, validate bool) ([]byte, error) {
	if src == nil {
		return nil, ErrMissingArgument
	}
	return decode(src, a, validate)
}

// DecodeString is like Decode, but decodes a string.
func DecodeString(s string, a Alphabet, validate bool) ([]byte, error) {
	return decode(s, a, validate)
}

func decode[T text](src T, a Alphabet, validate bool) ([]byte, error) {
	if !a.valid() {
		return nil, ErrMissingArgument
	}
	if validate && !matches(src, a) {
		return nil, ErrValidation
	}

	// n is the number of characters to decode and olen the number
	// of bytes they decode to. Padding is only recognized on even
	// length input.
	n := len(src)
	olen := DecodedLen(n)
	if n%2 == 0 {
		t := trailingPad(src)
		n -= t
		olen -= t
	}

	// The main loop writes n/4*3 bytes and the tail consumes one
	// more character than the number of bytes it writes.
	rem := olen - n/4*3
	if rem < 0 || rem > 2 || (rem > 0 && rem+1 > n%4) {
		return nil, ErrCorrupt
	}

	dst := make([]byte, olen)
	var failed byte
	i, j := 0, 0
	for ; n-i >= 4; i += 4 {
		c0 := revTable[src[i+0]]
		c1 := revTable[src[i+1]]
		c2 := revTable[src[i+2]]
		c3 := revTable[src[i+3]]

		v := uint(c0)<<18 | uint(c1)<<12 | uint(c2)<<6 | uint(c3)
		dst[j+0] = byte(v >> 16)
		dst[j+1] = byte(v >> 8)
		dst[j+2] = byte(v)

		failed |= c0 | c1 | c2 | c3
		j += 3
	}

	switch rem {
	case 2:
		c0 := revTable[src[i+0]]
		c1 := revTable[src[i+1]]
		c2 := revTable[src[i+2]]

		v := uint(c0)<<18 | uint(c1)<<12 | uint(c2)<<6
		dst[j+0] = byte(v >> 16)
		dst[j+1] = byte(v >> 8)

		failed |= c0 | c1 | c2
	case 1:
		c0 := revTable[src[i+0]]
		c1 := revTable[src[i+1]]

		v := uint(c0)<<18 | uint(c1)<<12
		dst[j+0] = byte(v >> 16)

		failed |= c0 | c1
	}

	// Valid 6-bit values never set the top two bits.
	if failed&0xc0 != 0 {
		return nil, ErrCorrupt
	}
	return dst, nil
}

// trailingPad returns the number of PadChar, at most two, that
// src ends with. A single PadChar is only counted when it is not
// part of a pair.
func trailingPad[T text](src T) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	last := subtle.ConstantTimeByteEq(src[n-1], PadChar)
	if n == 1 {
		return last
	}
	prev := subtle.ConstantTimeByteEq(src[n-2], PadChar)
	return last + last&prev
}
