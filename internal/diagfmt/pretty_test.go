package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

func oneDiagBag(d diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(16)
	bag.Add(d)
	return bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.swift", []byte("var x : Point = 1\n"))

	bag := oneDiagBag(diag.NewError(
		diag.SemaUnresolvedType,
		source.Span{File: id, Start: 8, End: 13},
		"use of undeclared type 'Point'",
	))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true, ShowNotes: true})
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "main.swift:1:9: ERROR SEM3005: use of undeclared type 'Point'" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "    var x : Point = 1" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "    "+strings.Repeat(" ", 8)+"^~~~~" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	src := "func f() {\n\tvar x : Int = 1\n\tvar x : Int = 2\n}\n"
	id := fs.AddVirtual("main.swift", []byte(src))

	first := uint32(strings.Index(src, "x"))
	second := uint32(strings.LastIndex(src, "x :"))
	d := diag.NewError(
		diag.SemaValueRedefinition,
		source.Span{File: id, Start: second, End: second + 1},
		"definition conflicts with previous value",
	).WithNote(source.Span{File: id, Start: first, End: first + 1}, "previous definition here")

	var buf bytes.Buffer
	Pretty(&buf, oneDiagBag(d), fs, PrettyOpts{ShowSource: true, ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "main.swift:3:6: ERROR SEM3001: definition conflicts with previous value") {
		t.Errorf("missing primary header:\n%s", out)
	}
	if !strings.Contains(out, "main.swift:2:6: note: previous definition here") {
		t.Errorf("missing note header:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, oneDiagBag(d), fs, PrettyOpts{ShowSource: true})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed despite ShowNotes=false:\n%s", buf.String())
	}
}

func TestPrettyTabAlignment(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.swift", []byte("\tvar x : Ghost = 1\n"))

	bag := oneDiagBag(diag.NewError(
		diag.SemaUnresolvedType,
		source.Span{File: id, Start: 9, End: 14},
		"use of undeclared type 'Ghost'",
	))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != "        var x : Ghost = 1" {
		t.Errorf("tab not expanded in source line: %q", lines[1])
	}
	// Tab expands to 4 columns, so the caret sits 12 columns in.
	if lines[2] != "    "+strings.Repeat(" ", 12)+"^~~~~" {
		t.Errorf("caret misaligned under tab-expanded text: %q", lines[2])
	}
}

func TestPrettySpanlessHeadlineOnly(t *testing.T) {
	bag := oneDiagBag(diag.NewError(
		diag.IOReadFailed,
		source.Span{},
		"failed to load file: open missing.swift: no such file or directory",
	))

	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), PrettyOpts{ShowSource: true, ShowNotes: true})
	out := buf.String()

	if !strings.HasPrefix(out, "ERROR IO4001: failed to load file:") {
		t.Errorf("spanless diagnostic should start with the severity label, got:\n%s", out)
	}
	if strings.Contains(out, ":0:0") {
		t.Errorf("spanless diagnostic leaked a zero location:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected a single line, got %d:\n%s", got, out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.swift", []byte("var x : Ghost = 1\n"))
	d := diag.NewError(diag.SemaUnresolvedType,
		source.Span{File: id, Start: 8, End: 13}, "use of undeclared type 'Ghost'")

	var colored, plain bytes.Buffer
	Pretty(&colored, oneDiagBag(d), fs, PrettyOpts{Color: true, ShowSource: true})
	Pretty(&plain, oneDiagBag(d), fs, PrettyOpts{ShowSource: true})

	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("Color=true produced no escape sequences:\n%q", colored.String())
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("Color=false produced escape sequences:\n%q", plain.String())
	}
}

func TestPrettyWidthTruncates(t *testing.T) {
	fs := source.NewFileSet()
	long := "var aaaa : " + strings.Repeat("B", 60) + " = 1"
	id := fs.AddVirtual("main.swift", []byte(long+"\n"))

	// Span near the start survives truncation.
	bag := oneDiagBag(diag.NewError(diag.SemaUnresolvedType,
		source.Span{File: id, Start: 4, End: 8}, "use of undeclared type 'aaaa'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true, Width: 20})
	out := buf.String()
	if !strings.Contains(out, "...") {
		t.Errorf("long line was not truncated:\n%s", out)
	}
	if !strings.Contains(out, "^~~~") {
		t.Errorf("caret near line start should survive truncation:\n%s", out)
	}

	// Span beyond the truncation point drops the caret line entirely.
	bag = oneDiagBag(diag.NewError(diag.SemaUnresolvedType,
		source.Span{File: id, Start: 40, End: 45}, "use of undeclared type"))
	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true, Width: 20})
	if strings.Contains(buf.String(), "^") {
		t.Errorf("caret should not point into elided text:\n%s", buf.String())
	}
}

func TestParseColorMode(t *testing.T) {
	cases := []struct {
		in   string
		want ColorMode
		ok   bool
	}{
		{"", ColorAuto, true},
		{"auto", ColorAuto, true},
		{"always", ColorAlways, true},
		{"never", ColorNever, true},
		{"rainbow", ColorAuto, false},
	}
	for _, tc := range cases {
		got, err := ParseColorMode(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseColorMode(%q) error = %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorModeEnabled(t *testing.T) {
	var buf bytes.Buffer
	if ColorAlways.Enabled(&buf) != true {
		t.Error("always should enable color for any writer")
	}
	if ColorNever.Enabled(&buf) != false {
		t.Error("never should disable color for any writer")
	}
	// A bytes.Buffer is not a terminal.
	if ColorAuto.Enabled(&buf) != false {
		t.Error("auto should stay plain for a non-terminal writer")
	}
}
