package base64

import (
	"errors"
	"runtime"
)

// StdPadding is the padding character.
const StdPadding = '='

var (
	// ErrCorrupt is returned when the Base64-encoded input is
	// incorrect or too short to hold any padding information.
	ErrCorrupt = errors.New("base64: input is corrupt")

	// ErrTooLarge is returned when the output buffer cannot be
	// allocated.
	ErrTooLarge = errors.New("base64: output too large")
)

const maxInt = int(^uint(0) >> 1)

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
//
// EncodedLen overflows if n > MaxEncodeLen.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// MaxEncodeLen is the largest input that can be encoded without
// overflowing an int.
const MaxEncodeLen = maxInt / 4 * 3

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
//
// The exact length is DecodedLen(n) minus the number of padding
// characters.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// grow extends dst by n bytes. It allocates at most once.
func grow(dst []byte, n int) (buf []byte, err error) {
	if n < 0 || len(dst) > maxInt-n {
		return nil, ErrTooLarge
	}
	total := len(dst) + n
	if total <= cap(dst) {
		return dst[:total], nil
	}

	// make panics with a runtime.Error if total is larger than
	// the allocator permits.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, ErrTooLarge
		}
	}()
	buf = make([]byte, total)
	copy(buf, dst)
	return buf, nil
}
