package token_test

import (
	"testing"

	"cexpand/internal/source"
	"cexpand/internal/token"
)

func tok(k token.Kind, sym source.StringID) token.Token {
	return token.Token{Kind: k, Sym: sym}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{token.KwAuto, token.KwInt, token.KwSizeof, token.KwWhile}
	for _, k := range kws {
		if !tok(k, 1).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.Num, token.Hash, token.RBracket, token.EOF}
	for _, k := range non {
		if tok(k, 0).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	ops := []token.Kind{token.Hash, token.HashHash, token.Plus, token.Ellipsis, token.RBracket}
	for _, k := range ops {
		if !tok(k, 0).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	if tok(token.Ident, 1).IsPunct() {
		t.Fatal("Ident must NOT be punct")
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := token.LookupKeyword("while"); !ok || k != token.KwWhile {
		t.Fatalf("while -> %v, ok=%v", k, ok)
	}
	if _, ok := token.LookupKeyword("While"); ok {
		t.Fatal("keywords are case-sensitive")
	}
	if _, ok := token.LookupKeyword("whileX"); ok {
		t.Fatal("whileX is not a keyword")
	}
}

func TestSame(t *testing.T) {
	intSym := source.StringID(7)

	// Same kind, same symbol.
	if !token.Same(tok(token.Ident, intSym), tok(token.Ident, intSym)) {
		t.Error("identical tokens should match")
	}

	// Raw identifier vs preprocessor-reclassified keyword: shared symbol wins.
	if !token.Same(tok(token.Ident, intSym), tok(token.KwInt, intSym)) {
		t.Error("raw ident and keyword with shared symbol should match")
	}

	// Different symbols never match.
	if token.Same(tok(token.Ident, 3), tok(token.Ident, 4)) {
		t.Error("different symbols must not match")
	}

	// No symbol on either side: kinds must agree.
	if !token.Same(tok(token.LParen, 0), tok(token.LParen, 0)) {
		t.Error("same punct kind should match")
	}
	if token.Same(tok(token.LParen, 0), tok(token.RParen, 0)) {
		t.Error("different punct kinds must not match")
	}
}

func TestKindString(t *testing.T) {
	if token.KwInt.String() != "KwInt" {
		t.Errorf("got %q", token.KwInt.String())
	}
	if token.Kind(250).String() != "Unknown" {
		t.Errorf("got %q", token.Kind(250).String())
	}
}
