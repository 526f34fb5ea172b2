package ast

import (
	"testing"

	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

func TestContextDeclRoundTrip(t *testing.T) {
	ctx := NewContext(Hints{})
	names := source.NewInterner()
	ti := types.NewInterner()

	x := names.Intern("x")
	sp := source.Span{File: 0, Start: 4, End: 5}

	id := ctx.NewValue(x, sp, ValueVar, ti.Builtins().Dependent)
	if !id.IsValid() {
		t.Fatal("NewValue returned invalid ID")
	}
	d := ctx.Value(id)
	if d.Name != x || d.Kind != ValueVar || d.Span != sp {
		t.Errorf("stored decl = %+v", d)
	}
	if d.IsDefinition() {
		t.Error("decl without initializer reported as definition")
	}

	d.Init = ctx.NewLit(ExprIntLit, sp)
	if !ctx.Value(id).IsDefinition() {
		t.Error("decl with initializer not reported as definition")
	}
}

func TestContextAliasStates(t *testing.T) {
	ctx := NewContext(Hints{})
	names := source.NewInterner()
	ti := types.NewInterner()

	foo := names.Intern("Foo")
	placeholder := ctx.NewTypeAlias(foo, source.Span{}, AliasUnresolved, types.NoTypeID)
	if ctx.Alias(placeholder).IsResolved() {
		t.Error("unresolved alias reported resolved")
	}

	a := ctx.Alias(placeholder)
	a.State = AliasResolved
	a.Underlying = ti.Builtins().Int
	if got := ctx.Alias(placeholder); !got.IsResolved() || got.Underlying != ti.Builtins().Int {
		t.Errorf("in-place completion lost: %+v", got)
	}
}

func TestNewUnitCopiesItems(t *testing.T) {
	ctx := NewContext(Hints{})
	names := source.NewInterner()
	ti := types.NewInterner()

	v := ctx.NewValue(names.Intern("a"), source.Span{}, ValueVar, ti.Builtins().Int)
	item := ctx.NewValueItem(source.Span{}, v)

	scratch := []ItemID{item}
	unit := ctx.NewUnit(source.Span{Start: 0, End: 10}, scratch)

	scratch[0] = NoItemID
	got := ctx.Unit(unit)
	if len(got.Items) != 1 || got.Items[0] != item {
		t.Errorf("unit items aliased the caller's slice: %v", got.Items)
	}
}
