// Package base64 implements the standard Base64 encoding as
// specified by RFC 4648, section 4.
//
// The alphabet is fixed:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
//
// and output is always padded with '='.
//
// # Checked and unchecked decoding
//
// Decode and DecodeString validate their input before touching
// it: every character must be in the alphabet, the input length
// must be a multiple of four, and padding may only appear as one
// or two trailing '=' characters. Invalid input is rejected with
// ErrCorrupt and nothing is written.
//
// DecodeNoCheck and DecodeStringNoCheck skip validation. They
// only fail when the input is shorter than two characters.
// Characters outside of the alphabet are decoded through an
// invalid marker, so the output for malformed input is garbage,
// but it is always exactly sized and the decoder never reads or
// writes out of bounds.
//
// # Comparison to encoding/base64
//
// Unlike encoding/base64, this package rejects the empty string
// when decoding and never returns partially decoded data: either
// the whole input decodes or nothing is returned. Newlines are
// not skipped.
package base64
