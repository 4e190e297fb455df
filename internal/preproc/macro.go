package preproc

import (
	"sort"
	"strings"

	"cexpand/internal/source"
	"cexpand/internal/token"
)

// Macro is one entry of the macro table. Object-like macros have a nil
// params slice; a function-like macro with zero parameters has an empty
// non-nil one.
type Macro struct {
	Name    string
	Sym     source.StringID
	ObjLike bool
	Params  []source.StringID
	DefSpan source.Span

	body []pTok
}

// pTok is a raw token annotated with expansion state: the main-file offset it
// resolves to, whether that offset is in the main file at all, and the
// hideset that stops recursive expansion. Marker entries carry no token; they
// fence off the end of a spliced include file.
type pTok struct {
	tok      token.Token
	origin   uint32
	fromMain bool
	hs       *hideset
	marker   bool
}

// hideset is a persistent list of macro symbols; sharing tails keeps the
// unions cheap.
type hideset struct {
	sym  source.StringID
	next *hideset
}

func (hs *hideset) contains(sym source.StringID) bool {
	for ; hs != nil; hs = hs.next {
		if hs.sym == sym {
			return true
		}
	}
	return false
}

func (hs *hideset) insert(sym source.StringID) *hideset {
	return &hideset{sym: sym, next: hs}
}

func (hs *hideset) union(other *hideset) *hideset {
	for ; other != nil; other = other.next {
		if !hs.contains(other.sym) {
			hs = hs.insert(other.sym)
		}
	}
	return hs
}

func (hs *hideset) intersect(other *hideset) *hideset {
	var out *hideset
	for ; hs != nil; hs = hs.next {
		if other.contains(hs.sym) {
			out = out.insert(hs.sym)
		}
	}
	return out
}

func (p *Preprocessor) lookupMacro(sym source.StringID) *Macro {
	if sym == source.NoStringID {
		return nil
	}
	return p.macros[sym]
}

// MacroInfo is the rendered form of one macro table entry, for the macro
// dump subcommand.
type MacroInfo struct {
	Name    string `json:"name"`
	Params  string `json:"params,omitempty"` // "(a, b)" for function-like macros, "" otherwise
	Body    string `json:"body,omitempty"`
	ObjLike bool   `json:"object_like"`
}

// Macros returns the macro table left after preprocessing, sorted by name.
func (p *Preprocessor) Macros() []MacroInfo {
	out := make([]MacroInfo, 0, len(p.macros))
	for _, m := range p.macros {
		info := MacroInfo{Name: m.Name, Body: spell(m.body), ObjLike: m.ObjLike}
		if !m.ObjLike {
			names := make([]string, len(m.Params))
			for i, sym := range m.Params {
				names[i] = p.interner.MustLookup(sym)
			}
			info.Params = "(" + strings.Join(names, ", ") + ")"
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
