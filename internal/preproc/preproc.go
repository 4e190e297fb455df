package preproc

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"cexpand/internal/align"
	"cexpand/internal/diag"
	"cexpand/internal/lexer"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// DefaultMaxIncludeDepth bounds include nesting; headers without guards hit
// this instead of looping forever.
const DefaultMaxIncludeDepth = 64

type Options struct {
	// Defines are -D style predefinitions, "NAME" or "NAME=VALUE".
	Defines []string
	// IncludeDirs are searched in order for #include targets.
	IncludeDirs []string
	// MaxIncludeDepth overrides DefaultMaxIncludeDepth when positive.
	MaxIncludeDepth int
	Reporter        diag.Reporter
}

// Preprocessor expands one main file eagerly. It owns the macro table and the
// conditional stack; included files are spliced into the same token stream
// and share both.
type Preprocessor struct {
	fs       *source.FileSet
	interner *source.Interner
	opts     Options
	reporter diag.Reporter

	macros map[source.StringID]*Macro
	conds  []condFrame

	in           []pTok
	out          []align.ExpTok
	includeDepth int
}

func New(fs *source.FileSet, interner *source.Interner, opts Options) *Preprocessor {
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	if opts.MaxIncludeDepth <= 0 {
		opts.MaxIncludeDepth = DefaultMaxIncludeDepth
	}
	p := &Preprocessor{
		fs:       fs,
		interner: interner,
		opts:     opts,
		reporter: rep,
		macros:   make(map[source.StringID]*Macro),
	}
	for _, def := range opts.Defines {
		p.Define(def)
	}
	return p
}

// Define installs an object-like macro from a -D style "NAME" or
// "NAME=VALUE" string.
func (p *Preprocessor) Define(def string) {
	name, val, hasVal := strings.Cut(def, "=")
	if !hasVal {
		val = "1"
	}
	id := p.fs.AddVirtual("<command line>", []byte(val))
	body := p.lex(p.fs.Get(id), false)
	if len(body) > 0 {
		body[0].tok.StartsLine = false
	}
	sym := p.interner.Intern(name)
	p.macros[sym] = &Macro{Name: name, Sym: sym, ObjLike: true, body: body}
}

// Expand preprocesses file and returns the full expansion stream, terminated
// by an EOF token whose origin is the file's length. The returned slice is
// what the aligner consumes, typically through align.NewSliceSource.
func (p *Preprocessor) Expand(file *source.File) []align.ExpTok {
	p.in = p.lex(file, true)
	p.run()

	for i := len(p.conds) - 1; i >= 0; i-- {
		diag.ReportError(p.reporter, diag.PPUnterminatedConditional, p.conds[i].span,
			"conditional never closed with #endif")
	}
	p.conds = nil

	end := safeLen(file.Content)
	p.out = append(p.out, align.ExpTok{
		Tok:      token.Token{Kind: token.EOF, Span: source.Span{File: file.ID, Start: end, End: end}},
		Origin:   end,
		FromMain: true,
	})
	return p.out
}

// run drives the main scan: include markers, directives, macro expansion,
// plain pass-through.
func (p *Preprocessor) run() {
	for len(p.in) > 0 {
		t := p.in[0]

		if t.marker {
			p.includeDepth--
			p.in = p.in[1:]
			continue
		}

		if t.tok.Kind == token.Hash && t.tok.StartsLine {
			p.directive()
			continue
		}

		if t.tok.Kind == token.Ident && p.expandOne(&p.in) {
			continue
		}

		p.emit(t)
		p.in = p.in[1:]
	}
}

// lex raw-lexes one file for preprocessing: comments and the EOF terminator
// are dropped, offsets become origins.
func (p *Preprocessor) lex(file *source.File, fromMain bool) []pTok {
	toks := lexer.Tokenize(file, p.interner, lexer.Options{Reporter: p.reporter})
	out := make([]pTok, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Comment || t.Kind == token.EOF {
			continue
		}
		out = append(out, pTok{tok: t, origin: t.Span.Start, fromMain: fromMain})
	}
	return out
}

// emit appends one token to the expansion stream, classifying keywords on the
// way out. The raw side leaves keywords as identifiers; this is where the two
// views intentionally diverge.
func (p *Preprocessor) emit(t pTok) {
	tok := t.tok
	if tok.Kind == token.Ident {
		if k, ok := token.LookupKeyword(tok.Text); ok {
			tok.Kind = k
		}
	}
	p.out = append(p.out, align.ExpTok{Tok: tok, Origin: t.origin, FromMain: t.fromMain})
}

// takeLine pops the current directive line: the leading token plus everything
// up to the next line start, include boundary, or end of input.
func (p *Preprocessor) takeLine() []pTok {
	line := []pTok{p.in[0]}
	i := 1
	for i < len(p.in) && !p.in[i].marker && !p.in[i].tok.StartsLine {
		line = append(line, p.in[i])
		i++
	}
	p.in = p.in[i:]
	return line
}

func safeLen(b []byte) uint32 {
	n, err := safecast.Conv[uint32](len(b))
	if err != nil {
		panic(fmt.Errorf("file length overflow: %w", err))
	}
	return n
}

// spell renders tokens back to text, separating tokens that had whitespace
// between them in the source.
func spell(toks []pTok) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && t.tok.LeadingSpace {
			b.WriteByte(' ')
		}
		b.WriteString(t.tok.Text)
	}
	return b.String()
}
