package source

import (
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("main.c", []byte("int x;\nint y;\n"))
	if id != MainFileID {
		t.Errorf("first file should get MainFileID, got %d", id)
	}

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Error("AddVirtual should set FileVirtual")
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("LineIdx length = %d, want 2", len(f.LineIdx))
	}

	if got, ok := fs.GetByPath("main.c"); !ok || got.ID != id {
		t.Errorf("GetByPath failed: ok=%v", ok)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.c", []byte("abc\ndef\n"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.c", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Error("expected a change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Error("no CR: nothing should change")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(out) != "x" {
		t.Errorf("BOM not stripped: had=%v out=%q", had, out)
	}

	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("short input mangled: had=%v out=%q", had, out)
	}
}
