package align

import (
	"strings"

	"cexpand/internal/rewrite"
	"cexpand/internal/token"
)

// Run merges the raw token list with the expanded stream and records the
// difference as insertions on rb. Raw tokens must come from the same file the
// buffer's base text was taken from and must end with an EOF token.
//
// Four cases drive the loop:
//
//   - expansion tokens that trace into an included file are dropped;
//   - a '#' at line start is a directive the expanded stream no longer has:
//     the line is kept verbatim (with #warning and #pragma mark commented
//     out, since their payload would not survive re-preprocessing);
//   - tokens that agree on offset and spelling pass through untouched;
//   - otherwise the raw side ran ahead (macro invocation text, commented
//     out as a run) or the expanded side did (expansion text, inserted
//     before the raw position).
func Run(raw []token.Token, exp Source, rb *rewrite.Buffer) {
	cur := NewRawCursor(raw)

	rawTok := cur.Next(false)
	ppTok := exp.Next()

	for rawTok.Kind != token.EOF || ppTok.Tok.Kind != token.EOF {
		if !ppTok.FromMain {
			ppTok = exp.Next()
			continue
		}

		if rawTok.Kind == token.Hash && rawTok.StartsLine {
			if name := cur.PeekAt(0); name.Kind == token.Ident {
				switch {
				case name.Text == "warning":
					rb.InsertAfter(rawTok.Span.Start, "//")
				case name.Text == "pragma" &&
					cur.PeekAt(1).Kind == token.Ident &&
					cur.PeekAt(1).Text == "mark":
					rb.InsertAfter(rawTok.Span.Start, "//")
				}
			}

			// Skip the raw side to the next line; the directive text itself
			// stays in the output untouched.
			rawTok = cur.Next(false)
			for !rawTok.StartsLine && rawTok.Kind != token.EOF {
				rawTok = cur.Next(false)
			}
			continue
		}

		ppOffs := ppTok.Origin
		rawOffs := rawTok.Span.Start

		if ppOffs == rawOffs && token.Same(rawTok, ppTok.Tok) {
			rawTok = cur.Next(false)
			ppTok = exp.Next()
			continue
		}

		if rawOffs <= ppOffs {
			// The raw side ran ahead: this text was consumed by the
			// preprocessor. Comment out the whole run at once rather than
			// bracketing each token.
			if rawTok.LeadingSpace {
				rb.InsertAfter(rawOffs, "/*")
			} else {
				rb.InsertAfter(rawOffs, " /*")
			}

			var endPos uint32
			for {
				endPos = rawTok.Span.End

				rawTok = cur.Next(true)
				rawOffs = rawTok.Span.Start

				if rawTok.Kind == token.Comment {
					// A comment ends the run; it must stay outside the
					// closing delimiter or the two would nest.
					rawTok = cur.Next(false)
					rawOffs = rawTok.Span.Start
					break
				}

				if !(rawOffs <= ppOffs && !rawTok.StartsLine &&
					(ppOffs != rawOffs || !token.Same(rawTok, ppTok.Tok))) {
					break
				}
			}
			rb.InsertBefore(endPos, "*/")
			continue
		}

		// The expanded side ran ahead: macro expansion produced tokens with
		// no raw counterpart. Collect the run and insert it in one piece.
		insertPos := ppOffs
		var expansion strings.Builder
		for {
			expansion.WriteByte(' ')
			expansion.WriteString(ppTok.Tok.Text)

			ppTok = exp.Next()
			for !ppTok.FromMain {
				ppTok = exp.Next()
			}
			ppOffs = ppTok.Origin
			if ppOffs >= rawOffs {
				break
			}
		}
		expansion.WriteByte(' ')
		rb.InsertBefore(insertPos, expansion.String())
	}
}
