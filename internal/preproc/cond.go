package preproc

import (
	"fmt"

	"cexpand/internal/diag"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

type condCtx uint8

const (
	inThen condCtx = iota
	inElif
	inElse
)

// condFrame is one level of #if nesting. included records whether any branch
// of this level has been taken yet.
type condFrame struct {
	ctx      condCtx
	span     source.Span
	included bool
}

func (p *Preprocessor) conditional(name string, line []pTok) {
	hashSpan := line[0].tok.Span

	switch name {
	case "if":
		inc := p.evalIf(line[2:], hashSpan)
		p.conds = append(p.conds, condFrame{span: hashSpan, included: inc})
		if !inc {
			p.skipBranch()
		}

	case "ifdef", "ifndef":
		defined := false
		if len(line) < 3 || line[2].tok.Kind != token.Ident {
			diag.ReportError(p.reporter, diag.PPMissingMacroName, hashSpan,
				"macro name must be an identifier")
		} else {
			defined = p.lookupMacro(line[2].tok.Sym) != nil
		}
		inc := defined == (name == "ifdef")
		p.conds = append(p.conds, condFrame{span: hashSpan, included: inc})
		if !inc {
			p.skipBranch()
		}

	case "elif":
		top := p.topCond(name, hashSpan)
		if top == nil {
			return
		}
		top.ctx = inElif
		switch {
		case top.included:
			p.skipBranch()
		case p.evalIf(line[2:], hashSpan):
			top.included = true
		default:
			p.skipBranch()
		}

	case "else":
		top := p.topCond(name, hashSpan)
		if top == nil {
			return
		}
		top.ctx = inElse
		if top.included {
			p.skipBranch()
		} else {
			top.included = true
		}

	case "endif":
		if len(p.conds) == 0 {
			diag.ReportError(p.reporter, diag.PPDanglingConditional, hashSpan, "stray #endif")
			return
		}
		p.conds = p.conds[:len(p.conds)-1]
	}
}

// topCond returns the innermost open frame, rejecting #elif/#else after an
// #else was already seen.
func (p *Preprocessor) topCond(name string, span source.Span) *condFrame {
	if len(p.conds) == 0 {
		diag.ReportError(p.reporter, diag.PPDanglingConditional, span,
			fmt.Sprintf("stray #%s", name))
		return nil
	}
	top := &p.conds[len(p.conds)-1]
	if top.ctx == inElse {
		diag.ReportError(p.reporter, diag.PPDanglingConditional, span,
			fmt.Sprintf("#%s after #else", name))
		return nil
	}
	return top
}

// skipBranch drops input up to the matching #elif, #else, or #endif at this
// nesting level, leaving that directive at the front for the main loop.
// Nested conditionals inside the skipped region are stepped over whole.
func (p *Preprocessor) skipBranch() {
	depth := 0
	i := 0
	for i < len(p.in) {
		t := p.in[i]
		if t.marker {
			p.includeDepth--
			i++
			continue
		}
		if t.tok.Kind != token.Hash || !t.tok.StartsLine ||
			i+1 >= len(p.in) || p.in[i+1].tok.Kind != token.Ident {
			i++
			continue
		}
		switch p.in[i+1].tok.Text {
		case "if", "ifdef", "ifndef":
			depth++
			i += 2
		case "elif", "else":
			if depth == 0 {
				p.in = p.in[i:]
				return
			}
			i += 2
		case "endif":
			if depth == 0 {
				p.in = p.in[i:]
				return
			}
			depth--
			i += 2
		default:
			i++
		}
	}
	p.in = nil
}

// evalIf evaluates an #if/#elif controlling expression: defined operators
// are resolved first, then macros expanded, then the constant expression
// evaluated. Unknown identifiers count as zero.
func (p *Preprocessor) evalIf(toks []pTok, span source.Span) bool {
	if len(toks) == 0 {
		diag.ReportError(p.reporter, diag.PPBadIfExpr, span, "no controlling expression")
		return false
	}
	toks = p.replaceDefined(toks, span)
	toks = p.expandList(toks)
	return p.evalConstExpr(toks, span) != 0
}

// replaceDefined rewrites "defined X" and "defined(X)" into 1 or 0 before
// any macro expansion touches the line.
func (p *Preprocessor) replaceDefined(toks []pTok, span source.Span) []pTok {
	var out []pTok
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.tok.Kind != token.Ident || t.tok.Text != "defined" {
			out = append(out, t)
			continue
		}

		j := i + 1
		paren := j < len(toks) && toks[j].tok.Kind == token.LParen
		if paren {
			j++
		}
		if j >= len(toks) || toks[j].tok.Kind != token.Ident {
			diag.ReportError(p.reporter, diag.PPBadIfExpr, span,
				"operand of 'defined' must be an identifier")
			return out
		}
		val := "0"
		if p.lookupMacro(toks[j].tok.Sym) != nil {
			val = "1"
		}
		if paren {
			j++
			if j >= len(toks) || toks[j].tok.Kind != token.RParen {
				diag.ReportError(p.reporter, diag.PPBadIfExpr, span,
					"missing ')' after 'defined'")
				return out
			}
		}

		num := t
		num.tok.Kind = token.Num
		num.tok.Text = val
		num.tok.Sym = source.NoStringID
		out = append(out, num)
		i = j
	}
	return out
}
