package diagfmt

import (
	"strings"
	"testing"

	"cexpand/internal/diag"
	"cexpand/internal/source"
)

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.c", []byte("int x = $;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character '$'",
		Primary:  source.Span{File: 0, Start: 8, End: 9},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "test.c:1:9: error LEX1001: unknown character '$'") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "  int x = $;\n") {
		t.Errorf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "\n          ^\n") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.c", []byte("abcdef\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.PPMacroRedefined,
		Message:  "redefined",
		Primary:  source.Span{File: 0, Start: 1, End: 4},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	if !strings.Contains(sb.String(), "\n   ^~~\n") {
		t.Errorf("underline should cover three cells:\n%s", sb.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.c", []byte("#define A 1\n#define A 2\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.PPMacroRedefined,
		Message:  `"A" redefined`,
		Primary:  source.Span{File: 0, Start: 20, End: 21},
		Notes: []diag.Note{
			{Span: source.Span{File: 0, Start: 8, End: 9}, Msg: "previous definition here"},
		},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})

	if !strings.Contains(sb.String(), "note: previous definition here (line 1)") {
		t.Errorf("note missing:\n%s", sb.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.c", []byte("int a;\nint b;\nint $;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character '$'",
		Primary:  source.Span{File: 0, Start: 18, End: 19},
	})

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Context: 2})

	if !strings.Contains(sb.String(), "  int a;\n  int b;\n  int $;\n") {
		t.Errorf("context lines missing:\n%s", sb.String())
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  `failed to load "gone.c"`,
	})

	var sb strings.Builder
	Pretty(&sb, bag, nil, PrettyOpts{})

	if sb.String() != "error IO7001: failed to load \"gone.c\"\n" {
		t.Errorf("output = %q", sb.String())
	}
}

func TestDisplayPathBasename(t *testing.T) {
	if got := displayPath("/a/b/c.c", PathModeBasename); got != "c.c" {
		t.Errorf("got %q", got)
	}
}
