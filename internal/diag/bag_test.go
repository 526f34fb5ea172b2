package diag

import (
	"testing"

	"github.com/BluPerf/swift/internal/source"
)

func sp(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)

	if !b.Add(NewError(SemaValueRedefinition, sp(0, 0, 1), "one")) {
		t.Fatal("first Add rejected")
	}
	if !b.Add(NewError(SemaValueRedefinition, sp(0, 1, 2), "two")) {
		t.Fatal("second Add rejected")
	}
	if b.Add(NewError(SemaValueRedefinition, sp(0, 2, 3), "three")) {
		t.Error("Add beyond cap accepted")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	for i := uint32(0); i < 100; i++ {
		if !b.Add(NewError(UnknownCode, sp(0, i, i+1), "x")) {
			t.Fatalf("Add %d rejected on unlimited bag", i)
		}
	}
	if b.Len() != 100 {
		t.Errorf("Len = %d, want 100", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevInfo, UnknownCode, sp(0, 0, 0), "info"))
	b.Add(New(SevWarning, UnknownCode, sp(0, 0, 0), "warn"))
	if b.HasErrors() {
		t.Error("HasErrors true without errors")
	}
	b.Add(NewError(SemaTypeRedefinition, sp(0, 0, 0), "err"))
	if !b.HasErrors() {
		t.Error("HasErrors false with an error present")
	}
	if b.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", b.ErrorCount())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevWarning, SemaTypeRedefinition, sp(1, 5, 6), "later file"))
	b.Add(New(SevWarning, SemaValueRedefinition, sp(0, 9, 10), "later offset"))
	b.Add(New(SevError, SemaValueRedefinition, sp(0, 2, 4), "same span error"))
	b.Add(New(SevWarning, SemaValueRedefinition, sp(0, 2, 4), "same span warning"))

	b.Sort()
	items := b.Items()

	want := []string{"same span error", "same span warning", "later offset", "later file"}
	for i, msg := range want {
		if items[i].Message != msg {
			t.Errorf("items[%d].Message = %q, want %q", i, items[i].Message, msg)
		}
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	d := NewError(SemaValueRedefinition, sp(0, 3, 7), "dup")
	b.Add(d)
	b.Add(d)
	b.Add(NewError(SemaValueRedefinition, sp(0, 8, 9), "other"))

	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", b.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(UnknownCode, sp(0, 0, 1), "a"))

	other := NewBag(0)
	other.Add(NewError(UnknownCode, sp(0, 1, 2), "b"))
	other.Add(NewError(UnknownCode, sp(0, 2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap after Merge = %d, want >= 3", a.Cap())
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaValueRedefinition, "SEM3001"},
		{IOReadFailed, "IO4001"},
		{ProjBadManifest, "PRJ5001"},
		{UnknownCode, "E0000"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.want {
			t.Errorf("ID(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}
