package driver

import (
	"strings"
	"testing"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

func golden(t *testing.T, src string, opts Options) (string, *UnitResult) {
	t.Helper()
	fs, res := BindSource("main.swift", []byte(src), opts)
	return diag.FormatGolden(res.Bag.Items(), fs, true), res
}

func TestBindSourceClean(t *testing.T) {
	out, res := golden(t, `
var limit : Int = 10
typealias Size = Int64
func grow(by: Size) -> Size { return by }
`, Options{})
	if out != "" {
		t.Fatalf("unexpected diagnostics:\n%s", out)
	}
	if !res.Unit.IsValid() {
		t.Error("unit should be valid")
	}
	if res.FromCache {
		t.Error("virtual sources never come from cache")
	}
}

func TestBindSourceStats(t *testing.T) {
	_, res := golden(t, `
var limit : Int = 10
typealias Size = Int64
func grow(by: Size) -> Size { return by }
`, Options{})
	st := res.Stats
	// grow's parameter is a value declaration too.
	if st.Values != 3 {
		t.Errorf("Values = %d, want 3", st.Values)
	}
	if st.Aliases != 1 {
		t.Errorf("Aliases = %d, want 1 (prelude excluded)", st.Aliases)
	}
	if st.Items != 3 {
		t.Errorf("Items = %d, want 3", st.Items)
	}
	if st.Pending != 0 {
		t.Errorf("Pending = %d, want 0", st.Pending)
	}
}

func TestBindSourceUndeclaredType(t *testing.T) {
	out, res := golden(t, "var p : Point = origin\n", Options{})
	want := "error SEM3005 main.swift:1:9 use of undeclared type 'Point'"
	if out != want {
		t.Errorf("golden mismatch:\ngot:  %s\nwant: %s", out, want)
	}
	if len(res.Pending) != 1 || res.Stats.Pending != 1 {
		t.Errorf("pending = %v, stats %d, want one entry", res.Pending, res.Stats.Pending)
	}
}

func TestBindSourceForwardRefIsNotUndeclared(t *testing.T) {
	out, _ := golden(t, `
var p : Point = make()
typealias Point = (Int, Int)
`, Options{})
	if out != "" {
		t.Errorf("forward-referenced then defined type should be clean, got:\n%s", out)
	}
}

func TestBindSourceUndeclaredReportedOnce(t *testing.T) {
	// Two references to one undefined name share the placeholder, so the
	// follow-up pass reports it once, at the first reference.
	out, _ := golden(t, `
var a : Ghost = x
var b : Ghost = y
`, Options{})
	if n := strings.Count(out, "SEM3005"); n != 1 {
		t.Errorf("got %d undeclared-type errors, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "main.swift:2:9") {
		t.Errorf("error should point at the first reference:\n%s", out)
	}
}

func TestBindSourceRedefinition(t *testing.T) {
	out, _ := golden(t, `
func log() {
	var x : Int = 1
	var x : Int = 2
}
`, Options{})
	if !strings.Contains(out, "definition conflicts with previous value") {
		t.Errorf("missing redefinition error:\n%s", out)
	}
	if !strings.Contains(out, "previous definition here") {
		t.Errorf("missing note:\n%s", out)
	}
}

func TestBindSourceRequireTopLevelTypes(t *testing.T) {
	opts := Options{}
	opts.Sema.RequireTopLevelTypes = true
	out, _ := golden(t, "var count = 3\n", opts)
	if !strings.Contains(out, "top level declarations require a type specifier") {
		t.Errorf("missing top-level type error:\n%s", out)
	}
}

func TestBindSourceMaxDiagnostics(t *testing.T) {
	_, res := BindSource("main.swift", []byte(`
var a : G1 = x
var b : G2 = x
var c : G3 = x
`), Options{MaxDiagnostics: 2})
	if res.Bag.Len() != 2 {
		t.Errorf("bag has %d diagnostics, want cap of 2", res.Bag.Len())
	}
}

func TestBindSourceLexAndParseDiagnosticsLand(t *testing.T) {
	out, _ := golden(t, "var s : String = \"unterminated\n", Options{})
	if !strings.Contains(out, "LEX") {
		t.Errorf("lexical diagnostics should reach the bag:\n%s", out)
	}
}

func TestBindFileMissing(t *testing.T) {
	fs := source.NewFileSet()
	res := BindFile(fs, "no/such/file.swift", Options{})
	if res.Unit.IsValid() || res.Ctx != nil {
		t.Error("missing file should produce no unit")
	}
	if res.Bag.ErrorCount() != 1 {
		t.Fatalf("got %d errors, want 1", res.Bag.ErrorCount())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.IOReadFailed {
		t.Errorf("code = %v, want IOReadFailed", d.Code)
	}
	if !strings.HasPrefix(d.Message, "failed to load file: ") {
		t.Errorf("message = %q", d.Message)
	}
}
