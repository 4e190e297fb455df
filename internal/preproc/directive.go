package preproc

import (
	"fmt"
	"os"
	"path/filepath"

	"cexpand/internal/diag"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

// directive consumes the directive line at the front of the input and acts
// on it. The expansion stream never receives directive tokens; the aligner
// preserves them straight from the raw text.
func (p *Preprocessor) directive() {
	line := p.takeLine()
	hash := line[0]

	if len(line) == 1 {
		// Null directive.
		return
	}

	name := line[1]
	if name.tok.Kind != token.Ident {
		if name.tok.Kind == token.Num {
			// Line marker ("# 5 file"), emitted by other preprocessors.
			return
		}
		diag.ReportWarning(p.reporter, diag.PPMissingDirectiveName, name.tok.Span,
			fmt.Sprintf("expected a directive name, found %q", name.tok.Text))
		return
	}

	switch name.tok.Text {
	case "include":
		p.include(line)
	case "define":
		p.define(line)
	case "undef":
		p.undef(line)
	case "if", "ifdef", "ifndef", "elif", "else", "endif":
		p.conditional(name.tok.Text, line)
	case "warning":
		diag.ReportWarning(p.reporter, diag.PPWarningDirective, hash.tok.Span, spell(line[2:]))
	case "error":
		diag.ReportError(p.reporter, diag.PPErrorDirective, hash.tok.Span, spell(line[2:]))
	case "pragma", "line":
		// Not interpreted; the raw line passes through in the output.
	default:
		diag.ReportWarning(p.reporter, diag.PPUnknownDirective, name.tok.Span,
			fmt.Sprintf("#%s is not a recognized directive", name.tok.Text))
	}
}

func (p *Preprocessor) define(line []pTok) {
	if len(line) < 3 || line[2].tok.Kind != token.Ident {
		diag.ReportError(p.reporter, diag.PPMissingMacroName, line[1].tok.Span,
			"macro name must be an identifier")
		return
	}
	nameTok := line[2]
	sym := nameTok.tok.Sym
	rest := line[3:]

	m := &Macro{
		Name:    nameTok.tok.Text,
		Sym:     sym,
		ObjLike: true,
		DefSpan: nameTok.tok.Span,
	}

	// A '(' hugging the name opens a parameter list; with a space between it
	// is just the start of an object-like body.
	if len(rest) > 0 && rest[0].tok.Kind == token.LParen && !rest[0].tok.LeadingSpace {
		params, body, ok := p.readMacroParams(rest)
		if !ok {
			return
		}
		m.ObjLike = false
		m.Params = params
		rest = body
	}

	m.body = append([]pTok(nil), rest...)
	for i := range m.body {
		m.body[i].tok.StartsLine = false
		m.body[i].hs = nil
	}

	if _, exists := p.macros[sym]; exists {
		diag.ReportWarning(p.reporter, diag.PPMacroRedefined, nameTok.tok.Span,
			fmt.Sprintf("%q redefined", m.Name))
	}
	p.macros[sym] = m
}

// readMacroParams parses "( a, b )" at the front of rest and returns the
// parameter symbols plus the remaining body tokens.
func (p *Preprocessor) readMacroParams(rest []pTok) ([]source.StringID, []pTok, bool) {
	params := []source.StringID{}
	i := 1
	for {
		if i >= len(rest) {
			diag.ReportError(p.reporter, diag.PPBadMacroParams, rest[0].tok.Span,
				"parameter list never closed")
			return nil, nil, false
		}
		if rest[i].tok.Kind == token.RParen {
			i++
			break
		}
		if len(params) > 0 {
			if rest[i].tok.Kind != token.Comma {
				diag.ReportError(p.reporter, diag.PPBadMacroParams, rest[i].tok.Span,
					fmt.Sprintf("expected ',' between parameters, found %q", rest[i].tok.Text))
				return nil, nil, false
			}
			i++
		}
		if i >= len(rest) || rest[i].tok.Kind != token.Ident {
			diag.ReportError(p.reporter, diag.PPBadMacroParams, rest[0].tok.Span,
				"parameter name must be an identifier")
			return nil, nil, false
		}
		params = append(params, rest[i].tok.Sym)
		i++
	}
	return params, rest[i:], true
}

func (p *Preprocessor) undef(line []pTok) {
	if len(line) < 3 || line[2].tok.Kind != token.Ident {
		diag.ReportError(p.reporter, diag.PPMissingMacroName, line[1].tok.Span,
			"macro name must be an identifier")
		return
	}
	delete(p.macros, line[2].tok.Sym)
}

// include resolves the target, lexes it, and splices its tokens (marked
// foreign) in front of the remaining input. A trailing marker restores the
// depth counter when the spliced run is consumed.
func (p *Preprocessor) include(line []pTok) {
	hashSpan := line[0].tok.Span

	fname, angled, ok := p.includeTarget(line)
	if !ok {
		return
	}

	if p.includeDepth >= p.opts.MaxIncludeDepth {
		diag.ReportError(p.reporter, diag.PPIncludeTooDeep, hashSpan,
			fmt.Sprintf("nesting deeper than %d, assuming an include cycle", p.opts.MaxIncludeDepth))
		return
	}

	file := p.resolveInclude(fname, angled, line[0].tok.Span.File)
	if file == nil {
		diag.ReportWarning(p.reporter, diag.PPIncludeNotFound, hashSpan,
			fmt.Sprintf("%q not found; its contents are ignored", fname))
		return
	}

	toks := p.lex(file, false)
	toks = append(toks, pTok{marker: true})
	p.in = append(toks, p.in...)
	p.includeDepth++
}

// includeTarget extracts the filename from a #include line: a string literal
// for the quoted form, or everything between '<' and '>' for the angled form.
func (p *Preprocessor) includeTarget(line []pTok) (fname string, angled, ok bool) {
	if len(line) < 3 {
		diag.ReportError(p.reporter, diag.PPBadInclude, line[1].tok.Span, "expected a filename")
		return "", false, false
	}

	t := line[2]
	if t.tok.Kind == token.Str {
		text := t.tok.Text
		if len(text) < 2 {
			diag.ReportError(p.reporter, diag.PPBadInclude, t.tok.Span, "empty filename")
			return "", false, false
		}
		return text[1 : len(text)-1], false, true
	}

	if t.tok.Kind == token.Lt {
		var name string
		for _, part := range line[3:] {
			if part.tok.Kind == token.Gt {
				return name, true, true
			}
			name += part.tok.Text
		}
		diag.ReportError(p.reporter, diag.PPBadInclude, t.tok.Span, "missing closing '>'")
		return "", false, false
	}

	diag.ReportError(p.reporter, diag.PPBadInclude, t.tok.Span,
		fmt.Sprintf("expected \"file\" or <file>, found %q", t.tok.Text))
	return "", false, false
}

// resolveInclude searches the include path. The quoted form starts next to
// the including file; the angled form only looks at configured directories.
func (p *Preprocessor) resolveInclude(fname string, angled bool, from source.FileID) *source.File {
	var candidates []string
	if !angled {
		dir := filepath.Dir(p.fs.Get(from).Path)
		candidates = append(candidates, filepath.Join(dir, fname))
	}
	for _, dir := range p.opts.IncludeDirs {
		candidates = append(candidates, filepath.Join(dir, fname))
	}

	for _, path := range candidates {
		if f, ok := p.fs.GetByPath(path); ok {
			return f
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		id, err := p.fs.Load(path)
		if err != nil {
			continue
		}
		return p.fs.Get(id)
	}
	return nil
}
