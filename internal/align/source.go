package align

import (
	"cexpand/internal/token"
)

// ExpTok is one token of the macro-expanded stream together with its resolved
// origin. Origin is the byte offset in the main file the token traces back
// to: for unexpanded tokens their own start offset, for macro expansion the
// start of the outermost invocation in the main file. Origin is meaningful
// only when FromMain is set.
type ExpTok struct {
	Tok      token.Token
	Origin   uint32
	FromMain bool
}

// Source is the pull contract for the expanded stream. After the end of
// input, Next keeps returning the EOF token (FromMain set, Origin at the
// main file's length).
type Source interface {
	Next() ExpTok
}

// SliceSource serves a pre-built expansion stream. Tests use it to script
// the expanded side without running a preprocessor.
type SliceSource struct {
	toks []ExpTok
	idx  int
}

func NewSliceSource(toks []ExpTok) *SliceSource {
	return &SliceSource{toks: toks}
}

func (s *SliceSource) Next() ExpTok {
	if s.idx >= len(s.toks) {
		return s.toks[len(s.toks)-1]
	}
	t := s.toks[s.idx]
	s.idx++
	return t
}
