package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cexpand/internal/source"
	"cexpand/internal/token"
)

type TokenOutput struct {
	Kind         string      `json:"kind"`
	Text         string      `json:"text,omitempty"`
	Span         source.Span `json:"span"`
	StartsLine   bool        `json:"starts_line,omitempty"`
	LeadingSpace bool        `json:"leading_space,omitempty"`
}

// FormatTokensPretty writes one line per token with its kind, spelling,
// position, and layout flags.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		switch {
		case tok.StartsLine:
			fmt.Fprint(w, " [line-start]")
		case tok.LeadingSpace:
			fmt.Fprint(w, " [spaced]")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:         tok.Kind.String(),
			Text:         tok.Text,
			Span:         tok.Span,
			StartsLine:   tok.StartsLine,
			LeadingSpace: tok.LeadingSpace,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
