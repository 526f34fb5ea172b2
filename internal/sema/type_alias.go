package sema

import (
	"fmt"

	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// LookupOrCreateType resolves name to a type-alias declaration, fabricating
// an unresolved placeholder when the name has never been seen. It never
// fails: a forward reference gets a declaration to hang on to, and the
// finalizer decides later whether the reference was ever satisfied.
func (b *Binder) LookupOrCreateType(name source.StringID, sp source.Span) ast.AliasID {
	if id, _, ok := b.aliases.Lookup(name); ok {
		return id
	}
	return b.unresolved.getOrCreate(b, name, sp)
}

// DefineTypeAlias defines name as underlying in the current scope, or
// completes a same-depth forward-reference placeholder in place.
//
// Shadowing an outer-scope alias with a fresh one is always permitted.
// Redefining an already-resolved same-depth alias is an error; the proposed
// definition is discarded and the existing declaration returned, so the
// caller always has something usable.
func (b *Binder) DefineTypeAlias(sp source.Span, name source.StringID, underlying types.TypeID) ast.AliasID {
	existing, depth, found := b.aliases.Lookup(name)
	if !found || depth != b.aliases.Depth() {
		id := b.ctx.NewTypeAlias(name, sp, ast.AliasResolved, underlying)
		b.aliases.Insert(name, id)
		return id
	}

	d := b.ctx.Alias(existing)
	if !d.IsResolved() {
		// Complete in place. The placeholder keeps its identity, so
		// every reference recorded before this point observes the
		// resolved state without re-lookup.
		d.Span = sp
		d.State = ast.AliasResolved
		d.Underlying = underlying
		b.unresolved.markResolved(name)
		return existing
	}

	diag.ReportError(b.reporter, diag.SemaTypeRedefinition, sp,
		fmt.Sprintf("redefinition of type named '%s'", b.spelling(name))).
		WithNote(d.Span, "previous declaration here").
		Emit()
	return existing
}
