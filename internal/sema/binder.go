package sema

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/scope"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// Binder performs scoped name resolution and declaration registration for
// one translation unit. It owns the two scoped tables (values and type
// aliases), the unresolved-type registry, and all redefinition/overload
// policy; the parser drives it one declaration at a time, in source order,
// on one goroutine.
//
// Declarations live in the shared ast.Context; the binder stores IDs and
// never owns a node. Scope boundaries are the parser's business: it calls
// PushScope/PopScope as blocks open and close.
type Binder struct {
	ctx      *ast.Context
	names    *source.Interner
	types    *types.Interner
	reporter diag.Reporter
	opts     Options

	values  *scope.Table[source.StringID, ast.ValueID]
	aliases *scope.Table[source.StringID, ast.AliasID]

	unresolved unresolvedTypes
	finalized  bool
	prelude    int // alias decls the prelude allocated, before any user code
}

// NewBinder constructs a binder for one unit. The base scope is open from
// the start and seeded with the prelude type names.
func NewBinder(ctx *ast.Context, names *source.Interner, ti *types.Interner, reporter diag.Reporter, opts Options) *Binder {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	b := &Binder{
		ctx:      ctx,
		names:    names,
		types:    ti,
		reporter: reporter,
		opts:     opts,
		values:   scope.NewTable[source.StringID, ast.ValueID](),
		aliases:  scope.NewTable[source.StringID, ast.AliasID](),
	}
	b.installPrelude()
	b.prelude = int(ctx.Aliases.Len())
	return b
}

// Context returns the AST context declarations are allocated in.
func (b *Binder) Context() *ast.Context {
	return b.ctx
}

// Names returns the interner binding decisions are keyed on.
func (b *Binder) Names() *source.Interner {
	return b.names
}

// Types returns the type interner the binder resolves against.
func (b *Binder) Types() *types.Interner {
	return b.types
}

// PreludeAliases returns how many alias declarations the prelude
// allocated, so callers counting user declarations can subtract them.
func (b *Binder) PreludeAliases() int {
	return b.prelude
}

// PushScope opens a nested lexical scope in both tables.
func (b *Binder) PushScope() {
	b.values.Push()
	b.aliases.Push()
}

// PopScope closes the innermost scope, discarding every binding inserted
// into it. Popping the base scope panics; push and pop must be strictly
// nested.
func (b *Binder) PopScope() {
	b.values.Pop()
	b.aliases.Pop()
}

// Depth returns the current scope depth, 0 at top level.
func (b *Binder) Depth() int {
	return b.values.Depth()
}

// LookupValue resolves name to the nearest enclosing value declaration. A
// hit in the base frame returns NoValueID: top-level names form overload
// sets that a downstream pass disambiguates by signature, so references
// never bind to them here.
func (b *Binder) LookupValue(name source.StringID) ast.ValueID {
	id, depth, ok := b.values.Lookup(name)
	if !ok || depth == 0 {
		return ast.NoValueID
	}
	return id
}

// TopLevelOverloads returns every base-frame declaration of name in
// insertion order: the raw material for downstream overload resolution.
// The slice is table storage; callers must not modify it.
func (b *Binder) TopLevelOverloads(name source.StringID) []ast.ValueID {
	return b.values.AllAt(0, name)
}

func (b *Binder) spelling(name source.StringID) string {
	if s, ok := b.names.Lookup(name); ok {
		return s
	}
	return "_"
}
