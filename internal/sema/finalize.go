package sema

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

// FinalizeUnit runs the one-time end-of-unit pass: it materializes the
// top-level items into a unit-owned aggregate, optionally checks that
// top-level value declarations carry explicit types, and sweeps the
// pending unresolved-type list, attaching the survivors to the unit for a
// downstream pass to report.
//
// Calling it twice on one binder is a contract violation and panics.
func (b *Binder) FinalizeUnit(items []ast.ItemID, sp source.Span) ast.UnitID {
	if b.finalized {
		panic("sema: translation unit finalized twice")
	}
	b.finalized = true

	unitID := b.ctx.NewUnit(sp, items)
	if b.opts.RequireTopLevelTypes {
		b.checkTopLevelTypes(b.ctx.Unit(unitID).Items)
	}
	b.ctx.Unit(unitID).Unresolved = b.unresolved.sweep(b.ctx)
	return unitID
}

// checkTopLevelTypes reports top-level value declarations whose type is
// still fully dependent and substitutes the empty tuple, a recovery so
// later phases never observe an unresolved type at top level.
func (b *Binder) checkTopLevelTypes(items []ast.ItemID) {
	bt := b.types.Builtins()
	for _, itemID := range items {
		item := b.ctx.Item(itemID)
		if item.Kind != ast.ItemValue {
			continue
		}
		vd := b.ctx.Value(item.Value)
		if vd.Type != bt.Dependent {
			continue
		}
		diag.ReportError(b.reporter, diag.SemaTopLevelTypeMissing, vd.Span,
			"top level declarations require a type specifier").Emit()
		vd.Type = bt.EmptyTuple
	}
}
