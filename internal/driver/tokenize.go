package driver

import (
	"cexpand/internal/diag"
	"cexpand/internal/lexer"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// TokenizeResult bundles everything the tokenize command needs to render.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize raw-lexes the file at path, keeping comments, without running the
// preprocessor.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics), nil
}

// TokenizeSource raw-lexes in-memory content (stdin, tests).
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(file, source.NewInterner(), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	bag.Sort()
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}
}
