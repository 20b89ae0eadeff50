// Package lexer implements the pattern-driven tokenizer of spec §4.D: an
// ordered table of named Matchers, each trying a Pattern (literal, regex, or
// a native scanner closure) at the current position, with optional
// subdivision of a matched span into finer-grained tokens.
package lexer

// Cursor is the read-only view a native scanner Pattern operates over: the
// full text being lexed and the current byte offset within it.
type Cursor struct {
	Text string
	Pos  int
}

// Peek returns the byte at Pos+offset, or 0 past the end of Text.
func (c Cursor) Peek(offset int) byte {
	i := c.Pos + offset
	if i < 0 || i >= len(c.Text) {
		return 0
	}
	return c.Text[i]
}

// Rest returns the unconsumed remainder of Text from Pos onward.
func (c Cursor) Rest() string {
	if c.Pos >= len(c.Text) {
		return ""
	}
	return c.Text[c.Pos:]
}

// AtEnd reports whether the cursor has consumed all of Text.
func (c Cursor) AtEnd() bool {
	return c.Pos >= len(c.Text)
}
