package lexer

import (
	"cexpand/internal/diag"
	"cexpand/internal/token"
)

// scanComment lexes // and /* */ comments as real tokens. C block comments do
// not nest.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		// Ran off the end: still emit the comment so offsets stay whole.
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}
