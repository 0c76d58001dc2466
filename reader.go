package utf8utils

import (
	"io"
	"strings"
)

// Streaming adapters so a Cursor can be handed to code expecting a
// sequential byte source. These satisfy io.Reader, io.ByteReader, and
// io.WriterTo and follow the io conventions: exhaustion is io.EOF here,
// while the Cursor's own scanning methods stay infallible.

// Read copies up to len(p) unread bytes into p, consuming exactly the
// bytes copied. It returns io.EOF once the cursor is exhausted.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= len(c.buf) {
		return 0, io.EOF
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}

// ReadByte consumes and returns the next byte, or io.EOF once the
// cursor is exhausted.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, io.EOF
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// WriteTo drains the unread remainder into w in a single write.
func (c *Cursor) WriteTo(w io.Writer) (int64, error) {
	rest := c.buf[c.pos:]
	if len(rest) == 0 {
		return 0, nil
	}
	n, err := w.Write(rest)
	if n > len(rest) {
		panic("utf8utils: invalid Write count")
	}
	c.pos += n
	if err == nil && n < len(rest) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// ReadText appends the next CRLF-terminated line to b, decoded lossily,
// growing b first. It returns the number of content bytes consumed,
// which can differ from the decoded length when invalid sequences are
// replaced.
func (c *Cursor) ReadText(b *strings.Builder) int {
	line, n := c.ReadLine(nil)
	if n == 0 {
		return 0
	}
	s := DecodeLossy(line)
	b.Grow(len(s))
	b.WriteString(s)
	return n
}
