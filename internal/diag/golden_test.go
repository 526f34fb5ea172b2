package diag

import (
	"testing"

	"github.com/BluPerf/swift/internal/source"
)

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("sample.swift", []byte("var a = 1\nvar a = 2\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SemaValueRedefinition,
			Message:  "definition conflicts\nwith previous value",
			Primary:  source.Span{File: file, Start: 14, End: 15},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 4, End: 5}, Msg: "previous definition here"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaTopLevelTypeMissing,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 0, End: 3},
		},
	}

	expected := "warning SEM3004 sample.swift:1:1 another\n" +
		"note SEM3001 sample.swift:1:5 previous definition here\n" +
		"error SEM3001 sample.swift:2:5 definition conflicts with previous value"

	if got := FormatGolden(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden rendering:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenSkipsBadSpans(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("ok.swift", []byte("x"))

	diags := []Diagnostic{
		NewError(UnknownCode, source.Span{File: 99, Start: 0, End: 1}, "points nowhere"),
	}
	if got := FormatGolden(diags, fs, false); got != "" {
		t.Errorf("bad span rendered as %q, want empty", got)
	}
}

func TestFormatGoldenEmpty(t *testing.T) {
	if got := FormatGolden(nil, source.NewFileSet(), true); got != "" {
		t.Errorf("empty input rendered as %q", got)
	}
}
