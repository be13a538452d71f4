package base64

import "crypto/subtle"

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst. It returns the number of bytes written.
//
// If src is not well-formed (see Valid) Decode returns
// ErrCorrupt and writes nothing.
//
// Decode panics if dst is too small.
func Decode(dst, src []byte) (int, error) {
	return decode(dst, src, true)
}

// DecodeNoCheck is like Decode, but does not validate src.
//
// It only returns an error if src is shorter than two
// characters. Characters outside of the alphabet produce
// unspecified output bytes.
func DecodeNoCheck(dst, src []byte) (int, error) {
	return decode(dst, src, false)
}

// DecodeString returns the bytes represented by the Base64
// string s.
//
// If s is not well-formed (see Valid) DecodeString returns
// ErrCorrupt and a nil slice.
func DecodeString(s string) ([]byte, error) {
	return appendDecode(nil, s, true)
}

// DecodeStringNoCheck is like DecodeString, but does not
// validate s.
//
// See DecodeNoCheck.
func DecodeStringNoCheck(s string) ([]byte, error) {
	return appendDecode(nil, s, false)
}

// AppendDecode appends the bytes represented by the Base64
// input src to dst and returns the extended buffer.
//
// dst is grown at most once, by exactly the decoded length. If
// src is not well-formed AppendDecode returns ErrCorrupt and a
// nil slice.
func AppendDecode(dst, src []byte) ([]byte, error) {
	return appendDecode(dst, src, true)
}

func appendDecode[T text](dst []byte, src T, check bool) ([]byte, error) {
	n, _, err := decodedLen(src, check)
	if err != nil {
		return nil, err
	}
	m := len(dst)
	buf, err := grow(dst, n)
	if err != nil {
		return nil, err
	}
	if _, err := decode(buf[m:], src, false); err != nil {
		return nil, err
	}
	return buf, nil
}

// decodedLen returns the exact decoded length of src and the
// number of padding characters.
func decodedLen[T text](src T, check bool) (n, pad int, err error) {
	if len(src) < 2 {
		// Too short to hold any padding.
		return 0, 0, ErrCorrupt
	}
	if check && !valid(src) {
		return 0, 0, ErrCorrupt
	}
	// A trailing partial group can only reach this far in
	// unchecked mode. It is dropped, padding and all.
	if len(src)%4 == 0 {
		pad += subtle.ConstantTimeByteEq(src[len(src)-1], StdPadding)
		pad += subtle.ConstantTimeByteEq(src[len(src)-2], StdPadding)
	}
	return DecodedLen(len(src)) - pad, pad, nil
}

func decode[T text](dst []byte, src T, check bool) (int, error) {
	n, pad, err := decodedLen(src, check)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	// Hoist bounds checks.
	_ = dst[n-1]

	groups := len(src) / 4
	if pad > 0 {
		// The final group is handled below.
		groups--
	}

	var i, j int
	for ; i < groups*4; i += 4 {
		a := decodeMap[src[i+0]]
		b := decodeMap[src[i+1]]
		c := decodeMap[src[i+2]]
		d := decodeMap[src[i+3]]

		dst[j+0] = a<<2 | b>>4
		dst[j+1] = b<<4 | c>>2
		dst[j+2] = c<<6 | d
		j += 3
	}

	switch pad {
	case 1:
		a := decodeMap[src[i+0]]
		b := decodeMap[src[i+1]]
		c := decodeMap[src[i+2]]

		dst[j+0] = a<<2 | b>>4
		dst[j+1] = b<<4 | c>>2
		j += 2
	case 2:
		a := decodeMap[src[i+0]]
		b := decodeMap[src[i+1]]

		dst[j+0] = a<<2 | b>>4
		j++
	}
	return j, nil
}
