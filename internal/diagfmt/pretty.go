package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

const (
	sourceIndent = "    "
	tabWidth     = 4
)

// palette holds the per-severity styles. Color is enabled or disabled on
// each style explicitly so output does not depend on process environment.
type palette struct {
	err, warn, info, note, caret *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		note:  color.New(color.FgCyan),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty renders diagnostics for humans, one block per diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//	    <source line>
//	        ^~~~
//
// followed by the notes in the same shape. Diagnostics without a span (file
// IO, manifest problems) print the headline only. Items come out in bag
// order; call bag.Sort() first for location order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writePretty(w, &d, fs, opts, pal)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal *palette) {
	label := pal.severity(d.Severity).Sprintf("%s %s", d.Severity.String(), d.Code.ID())
	if d.Primary == (source.Span{}) {
		fmt.Fprintf(w, "%s: %s\n", label, d.Message)
	} else {
		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, start.Line, start.Col, label, d.Message)
		if opts.ShowSource {
			writeSnippet(w, f, start, end, opts.Width, pal)
		}
	}
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		noteLabel := pal.note.Sprint("note")
		if n.Span == (source.Span{}) {
			fmt.Fprintf(w, "%s: %s\n", noteLabel, n.Msg)
			continue
		}
		start, end := fs.Resolve(n.Span)
		f := fs.Get(n.Span.File)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, start.Line, start.Col, noteLabel, n.Msg)
		if opts.ShowSource {
			writeSnippet(w, f, start, end, opts.Width, pal)
		}
	}
}

// writeSnippet prints the line the span starts on and a caret run under the
// spanned text. Column math happens on tab-expanded text so the caret lines
// up with what was actually printed.
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, width int, pal *palette) {
	line := f.Line(start.Line)
	if line == "" {
		return
	}

	from := int(start.Col) - 1
	if from > len(line) {
		from = len(line)
	}
	to := len(line)
	if end.Line == start.Line && int(end.Col)-1 < to {
		to = int(end.Col) - 1
	}
	if to < from {
		to = from
	}
	prefix := runewidth.StringWidth(expandTabs(line[:from]))
	marked := runewidth.StringWidth(expandTabs(line[from:to]))
	if marked < 1 {
		marked = 1
	}

	display := expandTabs(line)
	if width > 0 && runewidth.StringWidth(display) > width {
		display = runewidth.Truncate(display, width, "...")
	}
	fmt.Fprintf(w, "%s%s\n", sourceIndent, display)

	// Never let the caret run past the printed text, truncated or not.
	avail := runewidth.StringWidth(display) - prefix
	if avail < 1 {
		return
	}
	if marked > avail {
		marked = avail
	}
	carets := "^" + strings.Repeat("~", marked-1)
	fmt.Fprintf(w, "%s%s%s\n", sourceIndent, strings.Repeat(" ", prefix), pal.caret.Sprint(carets))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
