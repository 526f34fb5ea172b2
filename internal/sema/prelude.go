package sema

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// installPrelude seeds the base frame with resolved aliases for the
// built-in type names, so annotations like ": Int" bind without
// fabricating placeholders. Prelude declarations have no source span.
func (b *Binder) installPrelude() {
	bt := b.types.Builtins()
	prelude := []struct {
		name string
		ty   types.TypeID
	}{
		{"Int", bt.Int},
		{"Int64", bt.Int64},
		{"Float", bt.Float},
		{"Double", bt.Double},
		{"Bool", bt.Bool},
		{"String", bt.String},
		{"Char", bt.Char},
		{"Void", bt.EmptyTuple},
	}
	for _, p := range prelude {
		name := b.names.Intern(p.name)
		id := b.ctx.NewTypeAlias(name, source.Span{}, ast.AliasResolved, p.ty)
		b.aliases.Insert(name, id)
	}
}
