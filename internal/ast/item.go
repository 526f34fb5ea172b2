package ast

import "github.com/BluPerf/swift/internal/source"

type ItemKind uint8

const (
	ItemValue ItemKind = iota
	ItemTypeAlias
	ItemExpr
)

// Item is one top-level or block-level statement. Exactly one of the payload
// IDs is valid, selected by Kind.
type Item struct {
	Kind  ItemKind
	Span  source.Span
	Value ValueID
	Alias AliasID
	Expr  ExprID
}

// Unit is the finalized translation unit: the persisted top-level item
// sequence plus the type aliases still unresolved when the unit ended, kept
// for a later pass to report.
type Unit struct {
	Span       source.Span
	Items      []ItemID
	Unresolved []AliasID
}
