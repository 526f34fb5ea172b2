package types

import (
	"strings"

	"github.com/BluPerf/swift/internal/source"
)

// Format renders a type for diagnostics and debug output. Alias names are
// resolved through the shared string interner.
func (in *Interner) Format(id TypeID, names *source.Interner) string {
	t, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindDependent:
		return "<dependent>"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindChar:
		return "Char"
	case KindInt:
		if t.Width == Width64 {
			return "Int64"
		}
		return "Int"
	case KindFloat:
		if t.Width == Width64 {
			return "Double"
		}
		return "Float"
	case KindTuple:
		info, _ := in.TupleInfo(id)
		return in.formatList(info.Elems, names)
	case KindAlias:
		info, _ := in.AliasInfo(id)
		if s, ok := names.Lookup(info.Name); ok {
			return s
		}
		return "<alias>"
	case KindFn:
		info, _ := in.FnInfo(id)
		return in.formatList(info.Params, names) + " -> " + in.Format(info.Result, names)
	default:
		return "<invalid>"
	}
}

func (in *Interner) formatList(elems []TypeID, names *source.Interner) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(in.Format(e, names))
	}
	b.WriteByte(')')
	return b.String()
}
