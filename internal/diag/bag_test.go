package diag

import (
	"testing"

	"cexpand/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(LexUnknownChar, source.Span{}, "a")) {
		t.Fatal("first add should succeed")
	}
	if !bag.Add(NewError(LexUnknownChar, source.Span{}, "b")) {
		t.Fatal("second add should succeed")
	}
	if bag.Add(NewError(LexUnknownChar, source.Span{}, "c")) {
		t.Fatal("third add should be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag has nothing")
	}

	bag.Add(New(SevInfo, PPInfo, source.Span{}, "note"))
	if bag.HasWarnings() {
		t.Fatal("info is not a warning")
	}

	bag.Add(New(SevWarning, PPWarningDirective, source.Span{}, "careful"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("warning should register as warning only")
	}

	bag.Add(NewError(PPErrorDirective, source.Span{}, "boom"))
	if !bag.HasErrors() {
		t.Fatal("error not seen")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	sp := func(start uint32) source.Span { return source.Span{Start: start, End: start + 1} }

	bag.Add(NewError(PPBadIfExpr, sp(10), "later"))
	bag.Add(NewError(LexUnknownChar, sp(2), "earlier"))
	bag.Add(NewError(LexUnknownChar, sp(2), "earlier"))

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", bag.Len())
	}
	if bag.Items()[0].Primary.Start != 2 {
		t.Errorf("sort order wrong: first start = %d", bag.Items()[0].Primary.Start)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{PPMacroRedefined, "PP4004"},
		{IOLoadFileError, "IO7001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
