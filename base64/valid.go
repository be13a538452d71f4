package base64

import "crypto/subtle"

// Valid reports whether src is well-formed standard Base64.
//
// src is well-formed if its length is a non-zero multiple of
// four, every character but the last two is in the alphabet,
// and the last two characters are either in the alphabet or
// padding, with padding never followed by a non-padding
// character.
func Valid(src []byte) bool {
	return valid(src)
}

// ValidString is like Valid, but for strings.
func ValidString(s string) bool {
	return valid(s)
}

func valid[T text](src T) bool {
	n := len(src)
	if n < 2 || n%4 != 0 {
		return false
	}

	var failed byte
	for i := 0; i < n-2; i++ {
		failed |= decodeMap[src[i]]
	}

	c0, c1 := src[n-2], src[n-1]
	p0 := subtle.ConstantTimeByteEq(c0, StdPadding)
	p1 := subtle.ConstantTimeByteEq(c1, StdPadding)
	switch {
	case p0 == 1 && p1 == 0:
		// "x=y" style interior padding.
		return false
	case p0 == 1:
		// "==": OK
	case p1 == 1:
		failed |= decodeMap[c0]
	default:
		failed |= decodeMap[c0] | decodeMap[c1]
	}
	return failed != invalid
}
