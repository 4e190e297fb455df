package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cexpand/internal/diag"
	"cexpand/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestExpandObjectMacro(t *testing.T) {
	res := ExpandSource("test.c", []byte("#define A 1+2\nint x = A;\n"), Options{})

	want := "#define A 1+2\nint x =  1 + 2 /*A*/;\n"
	if got := string(res.Output); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
	if !res.Changed {
		t.Error("Changed = false for a rewritten file")
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestExpandMultiLineMacro(t *testing.T) {
	src := "#define ADD(a, b) \\\n  ((a) + (b))\nint s = ADD(1, 2);\n"
	res := ExpandSource("test.c", []byte(src), Options{})

	want := "#define ADD(a, b) \\\n  ((a) + (b))\nint s =  ( ( 1 ) + ( 2 ) ) /*ADD*/ /*(1, 2)*/;\n"
	if got := string(res.Output); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestExpandIdempotentOnOwnOutput(t *testing.T) {
	first := ExpandSource("test.c", []byte("#define A 1+2\nint x = A;\n"), Options{})
	second := ExpandSource("test.c", first.Output, Options{})

	if second.Changed {
		t.Errorf("second pass still edits:\n%q", second.Output)
	}
	if string(second.Output) != string(first.Output) {
		t.Errorf("second pass output differs:\n%q", second.Output)
	}
}

func TestExpandNoMacrosUnchanged(t *testing.T) {
	src := "int main(void) {\n\treturn 0; /* ok */\n}\n"
	res := ExpandSource("test.c", []byte(src), Options{})

	if res.Changed {
		t.Error("Changed = true without any macro")
	}
	if string(res.Output) != src {
		t.Errorf("output differs from input:\n%q", res.Output)
	}
}

func TestExpandWarningDirective(t *testing.T) {
	res := ExpandSource("test.c", []byte("#warning \"old api\"\n"), Options{})

	if got := string(res.Output); got != "//#warning \"old api\"\n" {
		t.Errorf("output = %q", got)
	}
	if !hasCode(res.Bag, diag.PPWarningDirective) {
		t.Error("missing PPWarningDirective")
	}
}

func TestExpandDefinesOption(t *testing.T) {
	res := ExpandSource("test.c", []byte("int x = VAL;\n"), Options{
		Defines: []string{"VAL=5"},
	})

	if got := string(res.Output); got != "int x =  5 /*VAL*/;\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExpandFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.c", "#define TWO 2\nint x = TWO;\n")

	res, err := Expand(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Output); got != "#define TWO 2\nint x =  2 /*TWO*/;\n" {
		t.Errorf("output = %q", got)
	}
}

func TestExpandMissingFile(t *testing.T) {
	if _, err := Expand(filepath.Join(t.TempDir(), "nope.c"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestExpandIncludeDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "defs.h", "#define N 7\n")
	main := writeFile(t, dir, "main.c", "#include <defs.h>\nint x = N;\n")

	res, err := Expand(main, Options{IncludeDirs: []string{dir}})
	if err != nil {
		t.Fatal(err)
	}
	// The include line survives verbatim; only the invocation is rewritten.
	if got := string(res.Output); got != "#include <defs.h>\nint x =  7 /*N*/;\n" {
		t.Errorf("output = %q", got)
	}
}

func TestMacros(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.c", "#define B 2\n#define A(x) x+1\n")

	res, err := Macros(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
	infos := res.Infos
	if len(infos) != 2 || infos[0].Name != "A" || infos[1].Name != "B" {
		t.Fatalf("infos = %+v", infos)
	}
	if infos[0].ObjLike || infos[0].Params != "(x)" {
		t.Errorf("A = %+v", infos[0])
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.c", "#define ONE 1\nint x = ONE;\n")
	b := writeFile(t, dir, "b.c", "int y;\n")

	results, err := ExpandPaths(context.Background(), []string{a, b}, Options{}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("len = %d", len(results))
	}
	if results[0].Path != a || !results[0].Result.Changed {
		t.Errorf("first result = %+v", results[0])
	}
	if results[1].Path != b || results[1].Result.Changed {
		t.Errorf("second result = %+v", results[1])
	}
}

func TestExpandPathsMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.c", "int x;\n")
	missing := filepath.Join(dir, "gone.c")

	results, err := ExpandPaths(context.Background(), []string{missing, ok}, Options{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Error("missing file should carry an error")
	}
	if !hasCode(results[0].Result.Bag, diag.IOLoadFileError) {
		t.Error("missing IOLoadFileError diagnostic")
	}
	if results[1].Err != nil || results[1].Result.Changed {
		t.Errorf("healthy file disturbed: %+v", results[1])
	}
}

func TestExpandPathsEmpty(t *testing.T) {
	results, err := ExpandPaths(context.Background(), nil, Options{}, 4)
	if err != nil || results != nil {
		t.Errorf("results=%v err=%v", results, err)
	}
}

func TestTokenizeKeepsComments(t *testing.T) {
	res := TokenizeSource("test.c", []byte("int x; /* keep */\n"), 0)

	var kinds []token.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Ident, token.Ident, token.Semicolon, token.Comment, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestTokenizeFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.c", "int x;\n")

	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Error("token list must end with EOF")
	}
}
