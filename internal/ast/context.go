package ast

import (
	"slices"

	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// Hints sizes the arenas up front for callers that know roughly how big the
// unit will be.
type Hints struct{ Units, Items, Values, Aliases, Exprs uint }

// Context owns every AST node of one run. Declarations have unit lifetime;
// the binder and the scope tables hold IDs into these arenas and never free
// anything.
type Context struct {
	Units   *Arena[Unit]
	Items   *Arena[Item]
	Values  *Arena[ValueDecl]
	Aliases *Arena[TypeAliasDecl]
	Exprs   *Arena[Expr]
}

func NewContext(hints Hints) *Context {
	if hints.Units == 0 {
		hints.Units = 1 << 2
	}
	if hints.Items == 0 {
		hints.Items = 1 << 7
	}
	if hints.Values == 0 {
		hints.Values = 1 << 7
	}
	if hints.Aliases == 0 {
		hints.Aliases = 1 << 5
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Context{
		Units:   NewArena[Unit](hints.Units),
		Items:   NewArena[Item](hints.Items),
		Values:  NewArena[ValueDecl](hints.Values),
		Aliases: NewArena[TypeAliasDecl](hints.Aliases),
		Exprs:   NewArena[Expr](hints.Exprs),
	}
}

// NewValue allocates a value declaration. ty is usually the dependent
// placeholder until the parser has seen an annotation.
func (c *Context) NewValue(name source.StringID, sp source.Span, kind ValueKind, ty types.TypeID) ValueID {
	return ValueID(c.Values.Allocate(ValueDecl{
		Name: name,
		Span: sp,
		Kind: kind,
		Type: ty,
	}))
}

// NewTypeAlias allocates a type-alias declaration in the given state.
func (c *Context) NewTypeAlias(name source.StringID, sp source.Span, state AliasState, underlying types.TypeID) AliasID {
	return AliasID(c.Aliases.Allocate(TypeAliasDecl{
		Name:       name,
		Span:       sp,
		State:      state,
		Underlying: underlying,
	}))
}

// NewValueItem wraps a value declaration into an item.
func (c *Context) NewValueItem(sp source.Span, value ValueID) ItemID {
	return ItemID(c.Items.Allocate(Item{Kind: ItemValue, Span: sp, Value: value}))
}

// NewAliasItem wraps a type-alias declaration into an item.
func (c *Context) NewAliasItem(sp source.Span, alias AliasID) ItemID {
	return ItemID(c.Items.Allocate(Item{Kind: ItemTypeAlias, Span: sp, Alias: alias}))
}

// NewExprItem wraps an expression statement into an item.
func (c *Context) NewExprItem(sp source.Span, expr ExprID) ItemID {
	return ItemID(c.Items.Allocate(Item{Kind: ItemExpr, Span: sp, Expr: expr}))
}

// NewIdent allocates an identifier expression, bound or not.
func (c *Context) NewIdent(sp source.Span, name source.StringID, decl ValueID) ExprID {
	return ExprID(c.Exprs.Allocate(Expr{Kind: ExprIdent, Span: sp, Name: name, Decl: decl}))
}

// NewLit allocates a literal expression of the given kind.
func (c *Context) NewLit(kind ExprKind, sp source.Span) ExprID {
	return ExprID(c.Exprs.Allocate(Expr{Kind: kind, Span: sp}))
}

// NewCall allocates a call expression.
func (c *Context) NewCall(sp source.Span, callee ExprID, args []ExprID) ExprID {
	return ExprID(c.Exprs.Allocate(Expr{Kind: ExprCall, Span: sp, Callee: callee, Args: args}))
}

// NewFuncLit allocates a function literal covering the body span.
func (c *Context) NewFuncLit(sp source.Span) ExprID {
	return ExprID(c.Exprs.Allocate(Expr{Kind: ExprFunc, Span: sp}))
}

// NewBinary allocates a binary operation; op is the operator spelling.
func (c *Context) NewBinary(sp source.Span, op source.StringID, lhs, rhs ExprID) ExprID {
	return ExprID(c.Exprs.Allocate(Expr{Kind: ExprBinary, Span: sp, Name: op, Args: []ExprID{lhs, rhs}}))
}

// NewUnit copies items into unit-owned storage and allocates the aggregate.
// The caller's slice can be reused afterwards.
func (c *Context) NewUnit(sp source.Span, items []ItemID) UnitID {
	return UnitID(c.Units.Allocate(Unit{
		Span:  sp,
		Items: slices.Clone(items),
	}))
}

func (c *Context) Unit(id UnitID) *Unit { return c.Units.Get(uint32(id)) }

func (c *Context) Item(id ItemID) *Item { return c.Items.Get(uint32(id)) }

func (c *Context) Value(id ValueID) *ValueDecl { return c.Values.Get(uint32(id)) }

func (c *Context) Alias(id AliasID) *TypeAliasDecl { return c.Aliases.Get(uint32(id)) }

func (c *Context) Expr(id ExprID) *Expr { return c.Exprs.Get(uint32(id)) }
