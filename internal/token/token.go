package token

import (
	"cexpand/internal/source"
)

// Token represents a single source token with its location and layout flags.
// Sym is the interned identifier symbol, or source.NoStringID for tokens that
// have no symbol (literals, punctuation, comments).
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Sym  source.StringID
	// StartsLine is set when the token is the first on its physical line.
	StartsLine bool
	// LeadingSpace is set when whitespace immediately precedes the token.
	LeadingSpace bool
}

// IsKeyword reports whether the token is a C keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAuto && t.Kind <= KwWhile
}

// IsPunct reports whether the token is punctuation or an operator, including
// '#' and '##'.
func (t Token) IsPunct() bool {
	return t.Kind >= Hash && t.Kind <= RBracket
}

// IsLiteral reports whether the token is a number, string, or character
// constant.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Num, Str, CharConst:
		return true
	default:
		return false
	}
}

// Same reports whether two tokens spell the same thing for alignment
// purposes: equal kind and symbol, or a shared non-null symbol regardless of
// kind. The second rule lets a raw-lexed identifier match the keyword token
// the preprocessor reclassified it into.
func Same(a, b Token) bool {
	if a.Kind == b.Kind && a.Sym == b.Sym {
		return true
	}
	if b.Sym != source.NoStringID && a.Sym == b.Sym {
		return true
	}
	return false
}
