package align

import (
	"cexpand/internal/token"
)

// RawCursor walks the raw token list forward only. The list must end with an
// EOF token; advancing past it is a caller bug and panics.
type RawCursor struct {
	toks []token.Token
	idx  int
}

func NewRawCursor(toks []token.Token) *RawCursor {
	return &RawCursor{toks: toks}
}

// Next consumes and returns the current token. With returnComment false a
// single leading comment token is stepped over first.
func (c *RawCursor) Next(returnComment bool) token.Token {
	if !returnComment && c.idx < len(c.toks) && c.toks[c.idx].Kind == token.Comment {
		c.idx++
	}
	if c.idx >= len(c.toks) {
		panic("align: raw cursor advanced past EOF")
	}
	t := c.toks[c.idx]
	c.idx++
	return t
}

// PeekAt returns the token n positions ahead of the cursor without consuming
// anything. Past the end it returns the trailing EOF token.
func (c *RawCursor) PeekAt(n int) token.Token {
	i := c.idx + n
	if i >= len(c.toks) {
		i = len(c.toks) - 1
	}
	return c.toks[i]
}
