package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cexpand/internal/diag"
	"cexpand/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	noteColor    = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty renders a sorted bag in a human-readable form: one header line
// <path>:<line>:<col>: <severity> <code>: <message> per diagnostic, followed
// by the source line with a caret underline over the primary span, then any
// notes indented beneath.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	// Diagnostics that never touched a file (load and write failures) have no
	// span to resolve.
	if fs == nil || int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n",
			severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col,
		sev, d.Code.ID(), d.Message)

	writeSourceLine(w, fs, file, d.Primary, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s (line %d)\n", label, n.Msg, nStart.Line)
		}
	}
}

// writeSourceLine prints the line the span starts on and a caret underline
// beneath it. Tabs and wide runes in the prefix shift the caret, so the
// underline column is measured in display cells, not bytes.
func writeSourceLine(w io.Writer, fs *source.FileSet, file *source.File, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && span.Empty() {
		return
	}

	for n := int8(0); n < opts.Context; n++ {
		before := int64(start.Line) - int64(opts.Context-n)
		if before < 1 {
			continue
		}
		fmt.Fprintf(w, "  %s\n", file.GetLine(uint32(before)))
	}
	fmt.Fprintf(w, "  %s\n", line)

	prefixEnd := int(start.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixEnd])

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanEnd := int(end.Col) - 1
		if spanEnd > len(line) {
			spanEnd = len(line)
		}
		width = runewidth.StringWidth(line[prefixEnd:spanEnd])
		if width < 1 {
			width = 1
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	switch sev {
	case diag.SevError:
		if colored {
			return errorColor.Sprint("error")
		}
		return "error"
	case diag.SevWarning:
		if colored {
			return warningColor.Sprint("warning")
		}
		return "warning"
	default:
		if colored {
			return infoColor.Sprint("info")
		}
		return "info"
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative:
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
		return path
	default:
		return path
	}
}
