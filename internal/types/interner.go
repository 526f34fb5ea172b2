package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitives every unit starts with.
type Builtins struct {
	Invalid    TypeID
	Dependent  TypeID
	EmptyTuple TypeID
	Bool       TypeID
	Int        TypeID
	Int64      TypeID
	Float      TypeID
	Double     TypeID
	String     TypeID
	Char       TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Structurally equal types share one ID, so equality is ID comparison.
type Interner struct {
	types  []Type
	index  map[typeKey]TypeID
	tuples []TupleInfo
	alias  []AliasInfo
	fns    []FnInfo

	builtins Builtins
}

// NewInterner constructs an interner seeded with the built-in primitives,
// the dependent placeholder and the empty tuple.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	// Slot 0 of every side table is an invalid sentinel.
	in.tuples = append(in.tuples, TupleInfo{})
	in.alias = append(in.alias, AliasInfo{})
	in.fns = append(in.fns, FnInfo{})

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Dependent = in.Intern(Type{Kind: KindDependent})
	in.builtins.EmptyTuple = in.RegisterTuple(nil)
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(MakeInt(WidthAny))
	in.builtins.Int64 = in.Intern(MakeInt(Width64))
	in.builtins.Float = in.Intern(MakeFloat(Width32))
	in.builtins.Double = in.Intern(MakeFloat(Width64))
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Char = in.Intern(Type{Kind: KindChar})
	return in
}

// Builtins returns TypeIDs for the seeded primitives.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}

// Len returns the number of interned types, counting the invalid sentinel.
func (in *Interner) Len() int {
	return len(in.types)
}

type typeKey struct {
	Kind    Kind
	Width   Width
	Payload uint32
}
