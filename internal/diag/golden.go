package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BluPerf/swift/internal/source"
)

type goldenLine struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGolden renders diagnostics one line per entry in a stable order,
// suitable for golden assertions and the CLI short format:
//
//	error SEM3001 main.swift:3:5 definition conflicts with previous value
//
// Notes are rendered as "note" lines under their diagnostic's code when
// includeNotes is set.
func FormatGolden(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	lines := make([]goldenLine, 0, len(diags))
	for i := range diags {
		lines = appendGolden(lines, &diags[i], fs, includeNotes)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		li, lj := lines[i], lines[j]
		if li.Path != lj.Path {
			return li.Path < lj.Path
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.Column != lj.Column {
			return li.Column < lj.Column
		}
		if li.Severity != lj.Severity {
			return li.Severity < lj.Severity
		}
		if li.Code != lj.Code {
			return li.Code < lj.Code
		}
		return li.Message < lj.Message
	})

	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", l.Severity, l.Code, l.Path, l.Line, l.Column, l.Message)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendGolden(out []goldenLine, d *Diagnostic, fs *source.FileSet, includeNotes bool) []goldenLine {
	if loc, ok := resolveSpan(fs, d.Primary); ok {
		out = append(out, goldenLine{
			Severity: severityLabel(d.Severity),
			Code:     d.Code.ID(),
			Path:     loc.Path,
			Line:     loc.Line,
			Column:   loc.Column,
			Message:  flattenMessage(d.Message),
		})
	}
	if includeNotes {
		for _, note := range d.Notes {
			loc, ok := resolveSpan(fs, note.Span)
			if !ok {
				continue
			}
			out = append(out, goldenLine{
				Severity: "note",
				Code:     d.Code.ID(),
				Path:     loc.Path,
				Line:     loc.Line,
				Column:   loc.Column,
				Message:  flattenMessage(note.Msg),
			})
		}
	}
	return out
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(fs *source.FileSet, span source.Span) (loc resolvedSpan, ok bool) {
	// A span pointing past the file set means a phase produced garbage;
	// golden output drops it rather than crashing the formatter.
	defer func() {
		if recover() != nil {
			loc = resolvedSpan{}
			ok = false
		}
	}()

	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return resolvedSpan{
		Path:   cleanPath(file.Path),
		Line:   start.Line,
		Column: start.Col,
	}, true
}

func cleanPath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func flattenMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
