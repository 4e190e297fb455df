package lexer

import (
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// Lexer produces the raw token stream of a C file, comments included. Every
// token records whether it starts its physical line and whether whitespace
// immediately precedes it; the aligner depends on both flags.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	interner *source.Interner

	atLineStart bool
	sawSpace    bool
}

func New(file *source.File, interner *source.Interner, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		interner:    interner,
		atLineStart: true,
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	startsLine := lx.atLineStart
	leading := lx.sawSpace

	if lx.cursor.EOF() {
		return token.Token{
			Kind:         token.EOF,
			Span:         lx.emptySpan(),
			StartsLine:   startsLine,
			LeadingSpace: leading,
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '/' && lx.isCommentStart():
		tok = lx.scanComment()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.StartsLine = startsLine
	tok.LeadingSpace = leading
	lx.atLineStart = false
	lx.sawSpace = false
	return tok
}

// Tokenize drains a lexer into a full token list, EOF included.
func Tokenize(file *source.File, interner *source.Interner, opts Options) []token.Token {
	lx := New(file, interner, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// skipWhitespace consumes spaces, tabs, newlines, and backslash-newline
// splices, updating the starts-line and leading-space state.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t':
			lx.cursor.Bump()
			lx.sawSpace = true
		case '\n':
			lx.cursor.Bump()
			lx.sawSpace = true
			lx.atLineStart = true
		case '\\':
			// Backslash-newline splices the next physical line onto this
			// one; the following token does not start a line.
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '\\' || b1 != '\n' {
				return
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.sawSpace = true
		default:
			return
		}
	}
}

func (lx *Lexer) isCommentStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
