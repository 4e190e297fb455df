package lexer

import (
	"cexpand/internal/token"
)

// scanIdentOrKeyword scans a C identifier. The symbol is always interned so
// the aligner can compare by reference; the kind stays Ident unless
// ClassifyKeywords is set (preprocessor mode).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	sym := lx.interner.Intern(text)

	kind := token.Ident
	if lx.opts.ClassifyKeywords {
		if k, ok := token.LookupKeyword(text); ok {
			kind = k
		}
	}
	return token.Token{Kind: kind, Span: sp, Text: text, Sym: sym}
}
