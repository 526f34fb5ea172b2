package ast

import "testing"

func TestArenaOneBasedIndices(t *testing.T) {
	a := NewArena[int](4)

	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Errorf("indices = %d, %d, want 1, 2", first, second)
	}
	if a.Get(0) != nil {
		t.Error("Get(0) did not return nil")
	}
	if got := *a.Get(first); got != 10 {
		t.Errorf("Get(1) = %d, want 10", got)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestArenaMutateThroughGet(t *testing.T) {
	a := NewArena[string](0)
	id := a.Allocate("before")
	*a.Get(id) = "after"
	if got := *a.Get(id); got != "after" {
		t.Errorf("mutation lost: %q", got)
	}
}
