package lexer

import (
	"cexpand/internal/token"
)

// scanNumber scans a preprocessing number: it starts with a digit (or a dot
// followed by a digit) and continues through identifier characters, dots, and
// exponent signs after e/E/p/P. This deliberately over-accepts, like any C
// preprocessor: "0x1.8p3" and "3e+5" are single tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(b) || b == '.':
			prev := lx.cursor.Bump()
			// e+ e- p+ p- keep the number going.
			if prev == 'e' || prev == 'E' || prev == 'p' || prev == 'P' {
				next := lx.cursor.Peek()
				if next == '+' || next == '-' {
					lx.cursor.Bump()
				}
			}
		default:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Num, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Num, Span: sp, Text: lx.text(sp)}
}
