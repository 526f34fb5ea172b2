package ast

import "github.com/BluPerf/swift/internal/source"

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprStringLit
	ExprCharLit
	ExprCall
	ExprBinary
	// ExprFunc is a function literal. Function definitions store one as
	// their initializer; the body itself is bound during parsing and not
	// retained.
	ExprFunc
)

// Expr is one expression node. The parser keeps the tree shallow: idents,
// literals, calls and binary operations are enough to exercise binding.
type Expr struct {
	Kind   ExprKind
	Span   source.Span
	Name   source.StringID // ident spelling; operator spelling for ExprBinary
	Decl   ValueID         // bound declaration for idents, NoValueID when unresolved
	Callee ExprID          // ExprCall
	Args   []ExprID        // call arguments; ExprBinary uses Args[0], Args[1]
}
