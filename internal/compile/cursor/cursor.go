// Package cursor provides an immutable view over a source buffer that
// tracks the current line.
package cursor

import "strings"

// Cursor is a position in a source buffer. All methods return new values;
// a Cursor is never modified in place.
type Cursor struct {
	src  string
	off  int
	line int
}

// New returns a cursor at the start of src on line 1.
func New(src string) Cursor {
	return Cursor{src: src, line: 1}
}

func (c Cursor) IsAtEnd() bool { return c.off >= len(c.src) }

// Len reports the number of bytes remaining.
func (c Cursor) Len() int { return len(c.src) - c.off }

func (c Cursor) Offset() int { return c.off }
func (c Cursor) Line() int   { return c.line }

// Peek returns the byte i positions ahead, or 0 past the end of input.
func (c Cursor) Peek(i int) byte {
	if i < 0 || c.off+i >= len(c.src) {
		return 0
	}
	return c.src[c.off+i]
}

func (c Cursor) StartsWith(lit string) bool {
	return strings.HasPrefix(c.src[c.off:], lit)
}

// Advance consumes one byte. An at-end cursor is returned unchanged.
func (c Cursor) Advance() Cursor {
	if c.IsAtEnd() {
		return c
	}
	if c.src[c.off] == '\n' {
		c.line++
	}
	c.off++
	return c
}

// AdvanceN consumes up to n bytes, counting every newline consumed.
func (c Cursor) AdvanceN(n int) Cursor {
	if n <= 0 {
		return c
	}
	n = min(n, c.Len())
	c.line += strings.Count(c.src[c.off:c.off+n], "\n")
	c.off += n
	return c
}

// Slice returns the text between c and end, which must come from the same
// buffer and not precede c.
func (c Cursor) Slice(end Cursor) string {
	return c.src[c.off:end.off]
}
