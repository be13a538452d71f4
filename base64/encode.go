package base64

// Encode encodes src, writing EncodedLen(len(src)) bytes to
// dst.
//
// Encode panics if dst is too small.
func Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	// Hoist bounds checks.
	_ = dst[EncodedLen(len(src))-1]

	// Convert 3 -> 4.
	for len(src) >= 3 {
		b0, b1, b2 := src[0], src[1], src[2]
		dst[0] = encodeStd[b0>>2]
		dst[1] = encodeStd[(b0&0x03)<<4|b1>>4]
		dst[2] = encodeStd[(b1&0x0f)<<2|b2>>6]
		dst[3] = encodeStd[b2&0x3f]
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		b0, b1 := src[0], src[1]
		dst[0] = encodeStd[b0>>2]
		dst[1] = encodeStd[(b0&0x03)<<4|b1>>4]
		dst[2] = encodeStd[(b1&0x0f)<<2]
		dst[3] = StdPadding
	case 1:
		b0 := src[0]
		dst[0] = encodeStd[b0>>2]
		dst[1] = encodeStd[(b0&0x03)<<4]
		dst[2] = StdPadding
		dst[3] = StdPadding
	}
}

// AppendEncode appends the Base64 encoding of src to dst and
// returns the extended buffer.
//
// dst is grown at most once, by exactly EncodedLen(len(src))
// bytes. If that is not possible AppendEncode returns
// ErrTooLarge and a nil slice.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if len(src) > MaxEncodeLen {
		return nil, ErrTooLarge
	}
	n := len(dst)
	buf, err := grow(dst, EncodedLen(len(src)))
	if err != nil {
		return nil, err
	}
	Encode(buf[n:], src)
	return buf, nil
}

// EncodeToString returns the Base64 encoding of src.
//
// It returns ErrTooLarge if the encoding cannot be allocated.
func EncodeToString(src []byte) (string, error) {
	buf, err := AppendEncode(nil, src)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
