package enumparse

// Cursor walks a token slice left to right. Besides the position it keeps the
// brace level of the input, so callers can tell when a braced body has closed
// without relying on any particular closing token.
type Cursor struct {
	toks []Token
	pos  int

	// depth is the brace level after the last advanced token, peak the
	// highest level reached while crossing it.
	depth int
	peak  int
	line  int
}

// NewCursor returns a cursor positioned on the first of toks.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// AtEnd reports whether every token has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.toks)
}

// Peek returns the token offset positions after the current one without
// consuming anything. The second result is false past the end of input.
func (c *Cursor) Peek(offset int) (Token, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[i], true
}

// Advance consumes and returns the current token, updating the brace level.
// At the end of input it returns the zero Token and does nothing.
func (c *Cursor) Advance() Token {
	if c.AtEnd() {
		return Token{}
	}
	tok := c.toks[c.pos]
	c.pos++
	c.line = tok.Line

	c.peak = c.depth
	for _, r := range tok.Value {
		switch r {
		case '{':
			c.depth++
			if c.depth > c.peak {
				c.peak = c.depth
			}
		case '}':
			c.depth--
		}
	}
	return tok
}

// Depth is the brace level after the last advanced token.
func (c *Cursor) Depth() int {
	return c.depth
}

// Peak is the highest brace level reached while crossing the last advanced
// token. For a token such as "{};" Peak is one above Depth.
func (c *Cursor) Peak() int {
	return c.peak
}

// Line is the line number of the last advanced token.
func (c *Cursor) Line() int {
	return c.line
}
