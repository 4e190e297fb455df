package rewrite

import (
	"testing"
)

func TestBufferNoEdits(t *testing.T) {
	b := NewBuffer([]byte("unchanged"))

	if b.HasEdits() {
		t.Error("fresh buffer has no edits")
	}
	if got := string(b.Materialize()); got != "unchanged" {
		t.Errorf("got %q", got)
	}
}

func TestBufferInsertBefore(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	b.InsertBefore(1, "X")

	if got := string(b.Materialize()); got != "aXbc" {
		t.Errorf("got %q, want aXbc", got)
	}
	if !b.HasEdits() {
		t.Error("HasEdits should be true")
	}
}

func TestBufferInsertAfter(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	b.InsertAfter(1, "X")

	if got := string(b.Materialize()); got != "aXbc" {
		t.Errorf("got %q, want aXbc", got)
	}
}

func TestBufferSameOffsetOrdering(t *testing.T) {
	// After edits stack behind earlier text at the offset, Before edits in
	// front of it. This mirrors how the aligner closes one deletion run and
	// opens the next at the same offset: the closer must come out first.
	b := NewBuffer([]byte("ab"))
	b.InsertAfter(1, "1")
	b.InsertAfter(1, "2")
	b.InsertBefore(1, "0")

	if got := string(b.Materialize()); got != "a012b" {
		t.Errorf("got %q, want a012b", got)
	}
}

func TestBufferCloserBeforeOpener(t *testing.T) {
	b := NewBuffer([]byte("xy"))
	b.InsertAfter(0, " /*") // opener for x
	b.InsertBefore(1, "*/") // closer at end of x
	b.InsertAfter(1, " /*") // opener for y at the same offset

	if got := string(b.Materialize()); got != " /*x*/ /*y" {
		t.Errorf("got %q", got)
	}
}

func TestBufferInsertAtEnd(t *testing.T) {
	b := NewBuffer([]byte("end"))
	b.InsertBefore(3, "!")

	if got := string(b.Materialize()); got != "end!" {
		t.Errorf("got %q", got)
	}
}

func TestBufferInsertIntoEmptyBase(t *testing.T) {
	b := NewBuffer(nil)
	b.InsertAfter(0, "only")

	if got := string(b.Materialize()); got != "only" {
		t.Errorf("got %q", got)
	}
}

func TestBufferBaseUntouched(t *testing.T) {
	base := []byte("base")
	b := NewBuffer(base)
	b.InsertBefore(2, "XX")
	_ = b.Materialize()

	if string(base) != "base" {
		t.Errorf("base mutated: %q", base)
	}
}

func TestBufferEditsLog(t *testing.T) {
	b := NewBuffer([]byte("abcdef"))
	b.InsertAfter(0, "p")
	b.InsertBefore(3, "q")
	b.InsertAfter(3, "r")

	edits := b.Edits()
	if len(edits) != 3 {
		t.Fatalf("len = %d", len(edits))
	}
	for i := 1; i < len(edits); i++ {
		if edits[i].Off < edits[i-1].Off {
			t.Errorf("offsets must be non-decreasing: %v", edits)
		}
	}
}
