package utf8utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Decoding errors.
var (
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")
)

// DecodeError provides detailed error information for a failed strict
// decode, including the position of the first invalid byte.
type DecodeError struct {
	Offset int   // byte offset of the first invalid sequence
	Err    error // underlying sentinel error (for errors.Is)
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode converts p to a string, requiring p to be valid UTF-8.
// On failure the returned error is a *DecodeError wrapping
// ErrInvalidEncoding; no partial output is returned.
func Decode(p []byte) (string, error) {
	if utf8.Valid(p) {
		return string(p), nil
	}
	return "", &DecodeError{Offset: invalidAt(p), Err: ErrInvalidEncoding}
}

// DecodeLossy converts p to a string, replacing invalid UTF-8 sequences
// with the Unicode replacement character. It never fails.
func DecodeLossy(p []byte) string {
	return strings.ToValidUTF8(string(p), "�")
}

// invalidAt returns the offset of the first invalid UTF-8 sequence in p.
func invalidAt(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(p)
}
