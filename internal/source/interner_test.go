package source

import (
	"fmt"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID is reserved for the empty string.
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should resolve to empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Error("Intern must not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("hello")
	if id1 != id2 {
		t.Errorf("same spelling should intern to the same ID: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "hello" {
		t.Errorf("Lookup returned %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("world")
	if id3 == id1 {
		t.Error("different spellings must intern to different IDs")
	}

	if interner.Len() != 3 { // "", "hello", "world"
		t.Errorf("Len = %d, want 3", interner.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	interner := NewInterner()

	id1 := interner.InternBytes([]byte("test"))
	id2 := interner.Intern("test")

	if id1 != id2 {
		t.Errorf("InternBytes and Intern disagree: %d != %d", id1, id2)
	}
}

func TestInternerStringCopy(t *testing.T) {
	interner := NewInterner()

	buf := []byte("original")
	id := interner.InternBytes(buf)
	buf[0] = 'X'

	if s, ok := interner.Lookup(id); !ok || s != "original" {
		t.Errorf("interner must keep its own copy, got %q", s)
	}
}

func TestInternerMustLookup(t *testing.T) {
	interner := NewInterner()

	id := interner.Intern("test")
	if s := interner.MustLookup(id); s != "test" {
		t.Errorf("MustLookup returned %q", s)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup should panic for an invalid ID")
		}
	}()
	interner.MustLookup(StringID(9999))
}

func BenchmarkInternerIntern(b *testing.B) {
	interner := NewInterner()
	strings := make([]string, 1000)
	for i := range strings {
		strings[i] = fmt.Sprintf("benchmark_string_%d", i)
	}

	b.ResetTimer()
	for i := range b.N {
		interner.Intern(strings[i%len(strings)])
	}
}
