package sema

import (
	"slices"

	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// unresolvedTypes tracks type-alias placeholders fabricated for names
// referenced before definition.
//
// The fast map serves completion in O(1); the pending list keeps creation
// order and is the authority at finalization. The map holds at most one
// entry per name (last writer wins) and is always a subset of the list;
// the list never holds the same declaration twice, since every entry comes
// from exactly one allocation.
type unresolvedTypes struct {
	byName  map[source.StringID]ast.AliasID
	pending []ast.AliasID
}

// getOrCreate fabricates a fresh unresolved placeholder, registers it, and
// pins it at the table's base frame so every later lookup at any depth
// resolves to this same declaration.
func (u *unresolvedTypes) getOrCreate(b *Binder, name source.StringID, sp source.Span) ast.AliasID {
	id := b.ctx.NewTypeAlias(name, sp, ast.AliasUnresolved, types.NoTypeID)
	if u.byName == nil {
		u.byName = make(map[source.StringID]ast.AliasID)
	}
	u.byName[name] = id
	u.pending = append(u.pending, id)
	b.aliases.InsertAt(0, name, id)
	return id
}

// markResolved drops name from the fast map once its alias is completed.
// The pending-list entry stays until the finalization sweep; pruning there
// in bulk keeps this path O(1).
func (u *unresolvedTypes) markResolved(name source.StringID) {
	delete(u.byName, name)
}

// sweep prunes entries that were resolved during the unit, compacting the
// survivors in place with their relative order kept, and returns a
// unit-owned copy of them.
func (u *unresolvedTypes) sweep(ctx *ast.Context) []ast.AliasID {
	kept := u.pending[:0]
	for _, id := range u.pending {
		if ctx.Alias(id).IsResolved() {
			continue
		}
		kept = append(kept, id)
	}
	u.pending = kept
	if len(kept) == 0 {
		return nil
	}
	return slices.Clone(kept)
}
