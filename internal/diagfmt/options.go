package diagfmt

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode specifies when pretty output uses ANSI colors.
type ColorMode uint8

const (
	// ColorAuto enables color only when the destination is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally.
	ColorAlways
	ColorNever
)

// ParseColorMode maps the usual flag spellings onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Enabled resolves the mode against a concrete destination. Auto only turns
// color on for a real terminal; anything that is not an *os.File stays plain.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color      bool
	ShowSource bool // print the offending line with a caret underneath
	ShowNotes  bool
	Width      int // maximum width of a printed source line, 0 for unlimited
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col next to the byte offsets
	IncludeNotes     bool
	Max              int // truncate the output, not the Bag
}
