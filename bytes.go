// Package utf8utils provides byte-level scanning and UTF-8 text recovery
// for line-oriented wire data.
//
// This package contains two layers:
//   - Byte utilities: classification and transformation of raw byte
//     slices (ASCII case folding, NUL stripping, trailing-delimiter
//     trimming)
//   - Cursor: a forward-only scanner over a NUL-stripped buffer with
//     delimiter and line extraction, plus adapters for the io interfaces
package utf8utils

import "bytes"

// Byte values recognized as delimiters.
const (
	NUL      byte = 0x00
	LF       byte = '\n'
	CR       byte = '\r'
	Space    byte = ' '
	Colon    byte = ':'
	Equals   byte = '='
	Slash    byte = '/'
	Question byte = '?'
)

// Two-byte sequences used as delimiters in line-oriented protocols.
const (
	CRLF       = "\r\n"
	ColonSpace = ": "
)

// IsHexDigit returns true if c is a hex digit (0-9, a-f, or A-F).
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsHex returns true if every byte of p is a hex digit.
// An empty slice is vacuously hex.
func IsHex(p []byte) bool {
	for _, c := range p {
		if !IsHexDigit(c) {
			return false
		}
	}
	return true
}

// Lowercase converts ASCII uppercase to lowercase.
// Non-uppercase bytes are returned unchanged.
func Lowercase(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ToLower returns a copy of p with ASCII uppercase letters lowercased.
// All other bytes pass through unchanged.
func ToLower(p []byte) []byte {
	result := make([]byte, len(p))
	for i, c := range p {
		result[i] = Lowercase(c)
	}
	return result
}

// ToLowerInPlace lowercases ASCII uppercase letters in p, modifying it
// directly, and returns p.
func ToLowerInPlace(p []byte) []byte {
	for i, c := range p {
		p[i] = Lowercase(c)
	}
	return p
}

// StripNUL removes every NUL byte from p, preserving the order of the
// remaining bytes. When p contains no NUL bytes it is returned unchanged
// without copying; otherwise a new slice is returned.
func StripNUL(p []byte) []byte {
	i := bytes.IndexByte(p, NUL)
	if i < 0 {
		return p
	}
	out := make([]byte, i, len(p)-1)
	copy(out, p[:i])
	for _, c := range p[i+1:] {
		if c != NUL {
			out = append(out, c)
		}
	}
	return out
}

// TrimCRLF removes all trailing CRLF pairs from p. The result is a
// subslice of p and never ends with CRLF.
func TrimCRLF(p []byte) []byte {
	for len(p) >= 2 && p[len(p)-2] == CR && p[len(p)-1] == LF {
		p = p[:len(p)-2]
	}
	return p
}

// TrimTrailing removes all trailing occurrences of pattern from p,
// returning a subslice of p. An empty pattern leaves p unchanged.
// For removing a single occurrence, use bytes.TrimSuffix.
func TrimTrailing(p, pattern []byte) []byte {
	if len(pattern) == 0 {
		return p
	}
	for bytes.HasSuffix(p, pattern) {
		p = p[:len(p)-len(pattern)]
	}
	return p
}
