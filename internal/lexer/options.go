package lexer

import (
	"cexpand/internal/diag"
	"cexpand/internal/source"
)

type Options struct {
	// Reporter may be nil; lexing continues either way.
	Reporter diag.Reporter
	// ClassifyKeywords controls whether keyword spellings become Kw* kinds.
	// Raw lexing for the aligner keeps them as Ident; the preprocessor also
	// lexes in raw mode and reclassifies on emit, so directive names like
	// "if" and "else" stay identifiers while it scans.
	ClassifyKeywords bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
