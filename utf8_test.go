package utf8utils

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "hello", "hello"},
		{"empty", "", ""},
		{"two byte", "caf\xc3\xa9", "café"},
		{"three byte", "\xe6\x97\xa5\xe6\x9c\xac", "日本"},
		{"replacement char literal", "a\xef\xbf\xbdb", "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{"stray continuation", "ab\xffcd", 2},
		{"truncated two byte", "\xc3", 0},
		{"truncated three byte at end", "abc\xe2\x82", 3},
		{"overlong form", "\xc0\xaf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatalf("Decode(%q) = %q, want error", tt.input, got)
			}
			if got != "" {
				t.Errorf("Decode(%q) returned partial output %q", tt.input, got)
			}
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidEncoding", tt.input, err)
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode(%q) error type = %T, want *DecodeError", tt.input, err)
			}
			if decErr.Offset != tt.wantOffset {
				t.Errorf("Decode(%q) offset = %d, want %d", tt.input, decErr.Offset, tt.wantOffset)
			}
		})
	}
}

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid passthrough", "hello", "hello"},
		{"empty", "", ""},
		{"multibyte passthrough", "caf\xc3\xa9", "café"},
		{"single invalid", "ab\xffcd", "ab�cd"},
		{"invalid run collapsed", "a\xff\xfeb", "a�b"},
		{"truncated at end", "abc\xe2\x82", "abc�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeLossy([]byte(tt.input))
			if got != tt.want {
				t.Errorf("DecodeLossy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
