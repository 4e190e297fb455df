// Package driver wires the pipeline together: load, raw-lex, preprocess,
// align, materialize. The CLI calls into this package only.
package driver

import (
	"cexpand/internal/align"
	"cexpand/internal/diag"
	"cexpand/internal/lexer"
	"cexpand/internal/preproc"
	"cexpand/internal/rewrite"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// DefaultMaxDiagnostics caps the bag when the caller does not say otherwise.
const DefaultMaxDiagnostics = 100

type Options struct {
	// Defines are -D style predefinitions passed to the preprocessor.
	Defines []string
	// IncludeDirs are searched for #include targets.
	IncludeDirs []string
	// MaxDiagnostics caps collected diagnostics per file.
	MaxDiagnostics int
	// Cache, when set, serves raw token lists keyed by content hash.
	Cache *TokenCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// ExpandResult is everything one expansion run produced. Output always holds
// the full text; Changed distinguishes a rewrite from a byte-identical copy.
type ExpandResult struct {
	FileSet *source.FileSet
	File    *source.File
	Output  []byte
	Changed bool
	Bag     *diag.Bag
}

// Expand rewrites macro invocations of the file at path into their
// expansions.
func Expand(path string, opts Options) (*ExpandResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandFile(fs, fs.Get(id), opts), nil
}

// ExpandSource runs the same pipeline over in-memory content (stdin, tests).
func ExpandSource(name string, content []byte, opts Options) *ExpandResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return expandFile(fs, fs.Get(id), opts)
}

func expandFile(fs *source.FileSet, file *source.File, opts Options) *ExpandResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}
	interner := source.NewInterner()

	raw := rawTokens(file, interner, reporter, opts.Cache)

	pp := preproc.New(fs, interner, preproc.Options{
		Defines:     opts.Defines,
		IncludeDirs: opts.IncludeDirs,
		Reporter:    reporter,
	})
	exp := pp.Expand(file)

	rb := rewrite.NewBuffer(file.Content)
	align.Run(raw, align.NewSliceSource(exp), rb)

	bag.Sort()
	return &ExpandResult{
		FileSet: fs,
		File:    file,
		Output:  rb.Materialize(),
		Changed: rb.HasEdits(),
		Bag:     bag,
	}
}

// rawTokens serves the comment-keeping token list, from the cache when the
// content hash is known there.
func rawTokens(file *source.File, interner *source.Interner, reporter diag.Reporter, cache *TokenCache) []token.Token {
	if cache != nil {
		if toks, ok := cache.Get(file, interner); ok {
			return toks
		}
	}
	toks := lexer.Tokenize(file, interner, lexer.Options{Reporter: reporter})
	if cache != nil {
		// Best effort; a failed write only costs the next run a re-lex.
		_ = cache.Put(file, toks)
	}
	return toks
}

// MacrosResult is the macro table that survived preprocessing one file.
type MacrosResult struct {
	FileSet *source.FileSet
	Infos   []preproc.MacroInfo
	Bag     *diag.Bag
}

// Macros preprocesses the file and returns the macro table that survived it.
func Macros(path string, opts Options) (*MacrosResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)

	bag := diag.NewBag(opts.maxDiagnostics())
	pp := preproc.New(fs, source.NewInterner(), preproc.Options{
		Defines:     opts.Defines,
		IncludeDirs: opts.IncludeDirs,
		Reporter:    diag.BagReporter{Bag: bag},
	})
	pp.Expand(file)
	bag.Sort()
	return &MacrosResult{FileSet: fs, Infos: pp.Macros(), Bag: bag}, nil
}
