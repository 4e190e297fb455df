package driver

import (
	"testing"

	"cexpand/internal/lexer"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

func openCache(t *testing.T) *TokenCache {
	t.Helper()
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestTokenCacheRoundTrip(t *testing.T) {
	cache := openCache(t)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("int foo; /* c */\n")))
	interner := source.NewInterner()
	toks := lexer.Tokenize(file, interner, lexer.Options{})

	if err := cache.Put(file, toks); err != nil {
		t.Fatal(err)
	}

	got, ok := cache.Get(file, interner)
	if !ok {
		t.Fatal("cache miss after Put")
	}
	if len(got) != len(toks) {
		t.Fatalf("len = %d, want %d", len(got), len(toks))
	}
	for i := range toks {
		if got[i].Kind != toks[i].Kind || got[i].Span != toks[i].Span ||
			got[i].Text != toks[i].Text ||
			got[i].StartsLine != toks[i].StartsLine ||
			got[i].LeadingSpace != toks[i].LeadingSpace {
			t.Errorf("token %d = %+v, want %+v", i, got[i], toks[i])
		}
	}
}

func TestTokenCacheReinternsSymbols(t *testing.T) {
	cache := openCache(t)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("foo bar foo\n")))
	toks := lexer.Tokenize(file, source.NewInterner(), lexer.Options{})
	if err := cache.Put(file, toks); err != nil {
		t.Fatal(err)
	}

	// A fresh interner must still yield consistent IDs within the list.
	fresh := source.NewInterner()
	got, ok := cache.Get(file, fresh)
	if !ok {
		t.Fatal("cache miss")
	}
	if got[0].Sym == source.NoStringID || got[0].Sym != got[2].Sym {
		t.Errorf("foo symbols differ: %v vs %v", got[0].Sym, got[2].Sym)
	}
	if got[1].Sym == got[0].Sym {
		t.Error("bar shares foo's symbol")
	}
	if fresh.MustLookup(got[0].Sym) != "foo" {
		t.Errorf("symbol spells %q", fresh.MustLookup(got[0].Sym))
	}
}

func TestTokenCacheMissOnDifferentContent(t *testing.T) {
	cache := openCache(t)

	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.c", []byte("int x;\n")))
	b := fs.Get(fs.AddVirtual("b.c", []byte("int y;\n")))
	interner := source.NewInterner()

	if err := cache.Put(a, lexer.Tokenize(a, interner, lexer.Options{})); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(b, interner); ok {
		t.Error("hit for content never cached")
	}
}

func TestTokenCacheDropAll(t *testing.T) {
	cache := openCache(t)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("int x;\n")))
	interner := source.NewInterner()
	if err := cache.Put(file, lexer.Tokenize(file, interner, lexer.Options{})); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(file, interner); ok {
		t.Error("hit after DropAll")
	}
}

func TestTokenCacheNil(t *testing.T) {
	var cache *TokenCache
	if _, ok := cache.Get(&source.File{}, source.NewInterner()); ok {
		t.Error("nil cache returned a hit")
	}
	if err := cache.Put(&source.File{}, []token.Token{}); err != nil {
		t.Errorf("nil cache Put: %v", err)
	}
}

func TestExpandWithCache(t *testing.T) {
	cache := openCache(t)
	src := []byte("#define A 1+2\nint x = A;\n")

	cold := ExpandSource("test.c", src, Options{Cache: cache})
	warm := ExpandSource("test.c", src, Options{Cache: cache})

	if string(cold.Output) != string(warm.Output) {
		t.Errorf("cached run differs:\n%q\nvs\n%q", cold.Output, warm.Output)
	}
	if !warm.Changed {
		t.Error("cached run lost its edits")
	}
}
