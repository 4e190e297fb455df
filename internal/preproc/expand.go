package preproc

import (
	"fmt"
	"strings"

	"cexpand/internal/diag"
	"cexpand/internal/lexer"
	"cexpand/internal/source"
	"cexpand/internal/token"
)

type macroArg struct {
	sym source.StringID
	raw []pTok
}

// expandOne expands the macro at the front of *list, splicing the
// substituted body back in so nested expansion happens on the next pass.
// Reports false when the front token is not an expandable macro invocation.
func (p *Preprocessor) expandOne(list *[]pTok) bool {
	l := *list
	t := l[0]

	if t.tok.Kind != token.Ident || t.hs.contains(t.tok.Sym) {
		return false
	}
	m := p.lookupMacro(t.tok.Sym)
	if m == nil {
		return false
	}

	if m.ObjLike {
		hs := t.hs.insert(m.Sym)
		body := p.retarget(m.body, hs, t.origin, t.fromMain)
		*list = append(body, l[1:]...)
		return true
	}

	// A function-like macro name without a following '(' is a plain
	// identifier.
	if len(l) < 2 || l[1].tok.Kind != token.LParen {
		return false
	}

	args, rparen, rest, ok := p.readMacroArgs(l, m)
	if !ok {
		return false
	}

	// Prosser's rule for function-like hidesets: intersect the name's set
	// with the closing paren's, then add the macro itself.
	hs := t.hs.intersect(rparen.hs).insert(m.Sym)
	body := p.subst(m, args)
	body = p.retarget(body, hs, t.origin, t.fromMain)
	*list = append(body, rest...)
	return true
}

// expandList fully macro-expands a detached token run (macro arguments,
// #if lines).
func (p *Preprocessor) expandList(toks []pTok) []pTok {
	var out []pTok
	for len(toks) > 0 {
		if p.expandOne(&toks) {
			continue
		}
		out = append(out, toks[0])
		toks = toks[1:]
	}
	return out
}

// readMacroArgs collects the invocation arguments for m from l, where l[0]
// is the macro name and l[1] the opening paren. Commas split arguments only
// at paren depth zero.
func (p *Preprocessor) readMacroArgs(l []pTok, m *Macro) (args []macroArg, rparen pTok, rest []pTok, ok bool) {
	var raw [][]pTok
	var cur []pTok
	depth := 0
	i := 2
	for {
		if i >= len(l) || l[i].marker {
			diag.ReportError(p.reporter, diag.PPUnterminatedArgs, l[0].tok.Span,
				fmt.Sprintf("argument list of %q never closed", m.Name))
			return nil, pTok{}, nil, false
		}
		t := l[i]
		if depth == 0 && t.tok.Kind == token.RParen {
			raw = append(raw, cur)
			break
		}
		if depth == 0 && t.tok.Kind == token.Comma {
			raw = append(raw, cur)
			cur = nil
			i++
			continue
		}
		switch t.tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		cur = append(cur, t)
		i++
	}

	// "F()" on a zero-parameter macro reads as one empty argument.
	if len(m.Params) == 0 && len(raw) == 1 && len(raw[0]) == 0 {
		raw = nil
	}
	if len(raw) != len(m.Params) {
		diag.ReportError(p.reporter, diag.PPArgCountMismatch, l[0].tok.Span,
			fmt.Sprintf("%q takes %d arguments, got %d", m.Name, len(m.Params), len(raw)))
		return nil, pTok{}, nil, false
	}

	args = make([]macroArg, len(raw))
	for j := range raw {
		args[j] = macroArg{sym: m.Params[j], raw: raw[j]}
	}
	return args, l[i], l[i+1:], true
}

func findArg(args []macroArg, t pTok) (macroArg, bool) {
	if t.tok.Kind != token.Ident {
		return macroArg{}, false
	}
	for _, a := range args {
		if a.sym == t.tok.Sym {
			return a, true
		}
	}
	return macroArg{}, false
}

// subst replaces parameters in m's body with the given arguments, applying
// the '#' and '##' operators. Arguments are fully expanded before plain
// substitution but pasted and stringized from their raw tokens.
func (p *Preprocessor) subst(m *Macro, args []macroArg) []pTok {
	var out []pTok
	body := m.body

	for i := 0; i < len(body); i++ {
		t := body[i]

		if t.tok.Kind == token.Hash && i+1 < len(body) {
			if a, ok := findArg(args, body[i+1]); ok {
				out = append(out, p.stringize(t, a.raw))
				i++
				continue
			}
		}

		if t.tok.Kind == token.HashHash {
			if len(out) == 0 || i+1 >= len(body) {
				diag.ReportError(p.reporter, diag.PPBadPaste, t.tok.Span,
					"'##' cannot appear at either end of a macro body")
				continue
			}
			nxt := body[i+1]
			if a, ok := findArg(args, nxt); ok {
				if len(a.raw) > 0 {
					out[len(out)-1] = p.paste(out[len(out)-1], a.raw[0])
					out = append(out, a.raw[1:]...)
				}
				i++
				continue
			}
			out[len(out)-1] = p.paste(out[len(out)-1], nxt)
			i++
			continue
		}

		if a, ok := findArg(args, t); ok {
			if i+1 < len(body) && body[i+1].tok.Kind == token.HashHash {
				if len(a.raw) == 0 {
					// Empty lhs: the paste degenerates to whatever the rhs
					// stands for.
					if i+2 < len(body) {
						rhs := body[i+2]
						if a2, ok := findArg(args, rhs); ok {
							out = append(out, a2.raw...)
						} else {
							out = append(out, rhs)
						}
						i += 2
					} else {
						i++
					}
					continue
				}
				out = append(out, a.raw...)
				continue
			}
			out = append(out, p.expandList(a.raw)...)
			continue
		}

		out = append(out, t)
	}
	return out
}

// stringize renders raw argument tokens into a quoted string literal token.
func (p *Preprocessor) stringize(hash pTok, raw []pTok) pTok {
	var b strings.Builder
	b.WriteByte('"')
	for i, t := range raw {
		if i > 0 && t.tok.LeadingSpace {
			b.WriteByte(' ')
		}
		for j := 0; j < len(t.tok.Text); j++ {
			c := t.tok.Text[j]
			if c == '\\' || c == '"' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')

	tok := token.Token{
		Kind:         token.Str,
		Span:         hash.tok.Span,
		Text:         b.String(),
		LeadingSpace: hash.tok.LeadingSpace,
	}
	return pTok{tok: tok, origin: hash.origin, fromMain: hash.fromMain}
}

// paste concatenates the spellings of two tokens and re-lexes the result;
// anything but exactly one token is a pasting error.
func (p *Preprocessor) paste(lhs, rhs pTok) pTok {
	text := lhs.tok.Text + rhs.tok.Text
	id := p.fs.AddVirtual("<paste>", []byte(text))
	toks := lexer.Tokenize(p.fs.Get(id), p.interner, lexer.Options{})

	if len(toks) != 2 || toks[0].Kind == token.Invalid {
		diag.ReportError(p.reporter, diag.PPBadPaste, lhs.tok.Span,
			fmt.Sprintf("pasting forms %q, an invalid token", text))
	}

	tok := toks[0]
	tok.StartsLine = false
	tok.LeadingSpace = lhs.tok.LeadingSpace
	return pTok{tok: tok, origin: lhs.origin, fromMain: lhs.fromMain, hs: lhs.hs}
}

// retarget stamps substituted body tokens with the invocation's origin and
// merges hs into each token's hideset.
func (p *Preprocessor) retarget(body []pTok, hs *hideset, origin uint32, fromMain bool) []pTok {
	out := make([]pTok, len(body))
	for i, t := range body {
		t.hs = t.hs.union(hs)
		t.origin = origin
		t.fromMain = fromMain
		out[i] = t
	}
	return out
}
