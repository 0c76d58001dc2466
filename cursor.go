package utf8utils

import "bytes"

// Cursor is a forward-only scanner over an in-memory byte buffer.
// NUL bytes are stripped when the cursor is constructed, so no read
// method ever yields one. Scanning methods consume bytes destructively
// and cannot fail: once the buffer is exhausted every read returns a
// zero-length result, repeatably.
//
// The zero value is an exhausted cursor. A Cursor is a single-owner
// sequential scanner and is not safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor reading from p with all NUL bytes removed.
// When p contains no NUL bytes the cursor reads p directly without
// copying; otherwise it reads a stripped copy.
func NewCursor(p []byte) *Cursor {
	return &Cursor{buf: StripNUL(p)}
}

// Len returns the number of unread bytes remaining in the cursor.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// ReadUntil appends bytes to dst up to the first occurrence of delim,
// consuming the delimiter without appending it. When delim is absent the
// rest of the buffer is appended. It returns the extended slice and the
// number of bytes appended: 0 means the cursor was exhausted or delim
// was the very next byte.
func (c *Cursor) ReadUntil(dst []byte, delim byte) ([]byte, int) {
	rest := c.buf[c.pos:]
	i := bytes.IndexByte(rest, delim)
	if i < 0 {
		c.pos = len(c.buf)
		return append(dst, rest...), len(rest)
	}
	c.pos += i + 1
	return append(dst, rest[:i]...), i
}

// ReadUntilSpace appends bytes to dst up to the next space byte.
func (c *Cursor) ReadUntilSpace(dst []byte) ([]byte, int) {
	return c.ReadUntil(dst, Space)
}

// ReadUntilLF appends bytes to dst up to the next line feed.
func (c *Cursor) ReadUntilLF(dst []byte) ([]byte, int) {
	return c.ReadUntil(dst, LF)
}

// ReadUntilNUL appends bytes to dst up to the next NUL byte. The
// constructor strips NUL bytes, so the delimiter is never found and the
// whole remainder is appended. This is the buffer-draining read.
func (c *Cursor) ReadUntilNUL(dst []byte) ([]byte, int) {
	return c.ReadUntil(dst, NUL)
}

// ReadUntilPair appends bytes to dst up to the first occurrence of the
// two-byte sequence first,second, consuming the sequence without
// appending it. The sequence only matches on exact adjacency: a first
// byte not followed by second is ordinary content, including a first
// byte that ends the buffer. When the sequence is absent the rest of the
// buffer is appended.
func (c *Cursor) ReadUntilPair(dst []byte, first, second byte) ([]byte, int) {
	read := 0
	for c.pos < len(c.buf) {
		b := c.buf[c.pos]
		c.pos++
		if b == first && c.pos < len(c.buf) && c.buf[c.pos] == second {
			c.pos++
			return dst, read
		}
		dst = append(dst, b)
		read++
	}
	return dst, read
}

// ReadLine appends the next CRLF-terminated line to dst, consuming the
// CRLF without appending it. A lone CR does not terminate the line.
func (c *Cursor) ReadLine(dst []byte) ([]byte, int) {
	return c.ReadUntilPair(dst, CR, LF)
}

// SkipLine discards bytes through the next CRLF, returning the number of
// content bytes discarded. Like ReadLine, a lone CR does not terminate.
func (c *Cursor) SkipLine() int {
	n := 0
	for c.pos < len(c.buf) {
		b := c.buf[c.pos]
		c.pos++
		if b == CR && c.pos < len(c.buf) && c.buf[c.pos] == LF {
			c.pos++
			return n
		}
		n++
	}
	return n
}

// Skip consumes leading bytes that appear in set, stopping at the first
// non-member. It returns the number of bytes consumed; an empty set
// consumes nothing.
func (c *Cursor) Skip(set []byte) int {
	n := 0
	for c.pos < len(c.buf) && bytes.IndexByte(set, c.buf[c.pos]) >= 0 {
		c.pos++
		n++
	}
	return n
}

// TakeHex consumes the maximal leading run of hex digits and returns it
// as a copy. The run is empty when the next byte is not a hex digit.
func (c *Cursor) TakeHex() []byte {
	start := c.pos
	for c.pos < len(c.buf) && IsHexDigit(c.buf[c.pos]) {
		c.pos++
	}
	return append([]byte(nil), c.buf[start:c.pos]...)
}

// IterLines calls fn for each CRLF-terminated line remaining in the
// cursor, passing the line without its terminator. The byte slice passed
// to fn is reused between calls and must not be retained. If fn returns
// false, iteration stops early.
//
// Iteration ends at the first zero-length read: an empty line is
// consumed but not yielded, and nothing past it is read. Returns the
// number of lines yielded.
func (c *Cursor) IterLines(fn func(line []byte) bool) int {
	var buf []byte
	count := 0
	for {
		var n int
		buf, n = c.ReadLine(buf[:0])
		if n == 0 {
			return count
		}
		count++
		if !fn(buf) {
			return count
		}
	}
}

// Lines consumes CRLF-terminated lines and returns them as text, each
// line decoded lossily. Collection ends at the first zero-length read.
// Returns nil when no lines were read.
func (c *Cursor) Lines() []string {
	var lines []string
	c.IterLines(func(line []byte) bool {
		lines = append(lines, DecodeLossy(line))
		return true
	})
	return lines
}

// RawLines consumes CRLF-terminated lines and returns them as raw bytes,
// one freshly allocated slice per line. Collection ends at the first
// zero-length read. Returns nil when no lines were read.
func (c *Cursor) RawLines() [][]byte {
	var lines [][]byte
	for {
		line, n := c.ReadLine(nil)
		if n == 0 {
			return lines
		}
		lines = append(lines, line)
	}
}

// Rest drains the cursor and returns the unread remainder. The returned
// slice aliases the cursor's buffer.
func (c *Cursor) Rest() []byte {
	rest := c.buf[c.pos:]
	c.pos = len(c.buf)
	return rest
}

// String returns the unread remainder decoded lossily, without
// consuming it.
func (c *Cursor) String() string {
	return DecodeLossy(c.buf[c.pos:])
}
