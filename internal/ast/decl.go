package ast

import (
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/types"
)

// ValueKind distinguishes the declaration forms a value name can come from.
type ValueKind uint8

const (
	ValueVar ValueKind = iota
	ValueFunc
	ValueParam
)

func (k ValueKind) String() string {
	switch k {
	case ValueVar:
		return "var"
	case ValueFunc:
		return "func"
	case ValueParam:
		return "param"
	}
	return "value"
}

// ValueDecl is a value binding (variable, function or parameter).
//
// Type stays the dependent placeholder until an annotation or inference
// supplies one. Init distinguishes a definition (initializer present) from a
// bare declaration; the binder words redefinition diagnostics off it. Infix
// is the operator precedence of an infix function, 0 for everything else;
// it is the only attribute overload compatibility looks at.
type ValueDecl struct {
	Name  source.StringID
	Span  source.Span
	Kind  ValueKind
	Type  types.TypeID
	Init  ExprID
	Infix uint16
}

// IsDefinition reports whether the declaration carries an initializer.
func (d *ValueDecl) IsDefinition() bool {
	return d.Init.IsValid()
}

// AliasState tags the two states of a type-alias declaration.
type AliasState uint8

const (
	// AliasUnresolved marks a placeholder fabricated for a name referenced
	// before its definition; Underlying is meaningless in this state.
	AliasUnresolved AliasState = iota
	AliasResolved
)

func (s AliasState) String() string {
	if s == AliasResolved {
		return "resolved"
	}
	return "unresolved"
}

// TypeAliasDecl is a named type binding. A forward reference and the
// eventual definition share one AliasID: completion mutates the declaration
// in place, it never reallocates. The binder is the only writer of State and
// Underlying.
type TypeAliasDecl struct {
	Name       source.StringID
	Span       source.Span
	State      AliasState
	Underlying types.TypeID
}

// IsResolved reports whether the alias has an underlying type yet.
func (d *TypeAliasDecl) IsResolved() bool {
	return d.State == AliasResolved
}
