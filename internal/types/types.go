package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindDependent is the "not yet inferred" placeholder a declaration
	// carries until annotation or inference supplies a real type.
	KindDependent
	KindBool
	KindInt
	KindFloat
	KindString
	KindChar
	// KindTuple covers (T1, ..., Tn); the zero-arity tuple doubles as the
	// unit/recovery type.
	KindTuple
	// KindAlias is a use of a named type; the name resolves through the
	// binder's type table, not here.
	KindAlias
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindDependent:
		return "dependent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindTuple:
		return "tuple"
	case KindAlias:
		return "alias"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the precision of numeric primitives.
type Width uint8

const (
	WidthAny Width = 0
	Width32  Width = 32
	Width64  Width = 64
)

// Type is a compact descriptor for any supported type. Composite kinds keep
// their element lists in per-kind side tables addressed by Payload.
type Type struct {
	Kind    Kind
	Width   Width  // for numeric primitives
	Payload uint32 // side-table slot for tuple/alias/fn
}

// MakeInt describes a signed integer of the given width (WidthAny for "Int").
func MakeInt(width Width) Type {
	return Type{Kind: KindInt, Width: width}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, Width: width}
}
