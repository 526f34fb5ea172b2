package sema

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
)

// AddValue registers a value declaration in the current scope.
//
// A same-name binding at the current depth is a redefinition error anywhere
// below top level. At top level it opens overload territory instead: the
// new declaration must pass the compatibility check against the previous
// one, and on success both stay in the table as members of one overload
// set. On any error the new declaration is discarded, never inserted;
// parsing continues with the previous binding intact.
func (b *Binder) AddValue(id ast.ValueID) {
	name := b.ctx.Value(id).Name
	prev, prevDepth, found := b.values.Lookup(name)
	if found && prevDepth == b.values.Depth() {
		if prevDepth != 0 {
			b.reportValueRedefinition(id, prev)
			return
		}
		if !b.checkValidOverload(id, prev) {
			return
		}
	}
	b.values.Insert(name, id)
}

func (b *Binder) reportValueRedefinition(newID, prevID ast.ValueID) {
	nd, pd := b.ctx.Value(newID), b.ctx.Value(prevID)

	msg := "declaration conflicts with previous value"
	if nd.IsDefinition() {
		msg = "definition conflicts with previous value"
	}
	note := "previous declaration here"
	if pd.IsDefinition() {
		note = "previous definition here"
	}
	diag.ReportError(b.reporter, diag.SemaValueRedefinition, nd.Span, msg).
		WithNote(pd.Span, note).
		Emit()
}

// checkValidOverload is the point compatibility check between the new
// declaration and one previous member of the overload set. Compatibility
// is taken to be transitive across the set, so earlier members are not
// rechecked; signature-based disambiguation happens downstream. Currently
// the only overload-relevant attribute is operator infix precedence.
func (b *Binder) checkValidOverload(newID, prevID ast.ValueID) bool {
	nd, pd := b.ctx.Value(newID), b.ctx.Value(prevID)
	if nd.Infix != pd.Infix {
		diag.ReportError(b.reporter, diag.SemaOverloadIncompatible, nd.Span,
			"infix precedence of functions in an overload set must match").
			WithNote(pd.Span, "previous declaration here").
			Emit()
		return false
	}
	return true
}
