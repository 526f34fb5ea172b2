package source

import "testing"

func TestInternRoundTrip(t *testing.T) {
	in := NewInterner()

	a := in.Intern("foo")
	b := in.Intern("bar")
	if a == b {
		t.Error("distinct strings interned to the same ID")
	}
	if again := in.Intern("foo"); again != a {
		t.Errorf("re-interning returned %d, want %d", again, a)
	}

	s, ok := in.Lookup(a)
	if !ok || s != "foo" {
		t.Errorf("Lookup(%d) = %q, %v", a, s, ok)
	}
	if in.MustLookup(b) != "bar" {
		t.Error("MustLookup returned wrong spelling")
	}
}

func TestInternZeroID(t *testing.T) {
	in := NewInterner()

	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string interned to %d, want NoStringID", id)
	}
	s, ok := in.Lookup(NoStringID)
	if !ok || s != "" {
		t.Errorf("Lookup(NoStringID) = %q, %v", s, ok)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner Len = %d, want 1", in.Len())
	}
}

func TestInternIdentNFC(t *testing.T) {
	in := NewInterner()

	composed := in.InternIdent("café")    // é as one code point
	decomposed := in.InternIdent("café") // e + combining acute
	if composed != decomposed {
		t.Errorf("NFC-equal identifiers got distinct IDs: %d vs %d", composed, decomposed)
	}

	s := in.MustLookup(composed)
	if s != "café" {
		t.Errorf("stored spelling = %q, want composed form", s)
	}

	if got := in.InternIdentBytes([]byte("café")); got != composed {
		t.Errorf("InternIdentBytes = %d, want %d", got, composed)
	}
}

func TestMustLookupPanicsOnUnknownID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup of unknown ID did not panic")
		}
	}()
	NewInterner().MustLookup(StringID(99))
}
