package types

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/BluPerf/swift/internal/source"
)

// AliasInfo stores the name a KindAlias type refers to. What declaration the
// name denotes is the binder's business; the interner only guarantees one
// TypeID per name.
type AliasInfo struct {
	Name source.StringID
}

// RegisterAlias creates or finds the alias type for name.
func (in *Interner) RegisterAlias(name source.StringID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		t := in.types[id]
		if t.Kind != KindAlias {
			continue
		}
		if in.alias[t.Payload].Name == name {
			return id
		}
	}
	slot := in.appendAliasInfo(AliasInfo{Name: name})
	return in.internRaw(Type{Kind: KindAlias, Payload: slot})
}

// AliasInfo retrieves alias metadata by TypeID.
func (in *Interner) AliasInfo(id TypeID) (*AliasInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindAlias {
		return nil, false
	}
	return &in.alias[t.Payload], true
}

func (in *Interner) appendAliasInfo(info AliasInfo) uint32 {
	in.alias = append(in.alias, info)
	slot, err := safecast.Conv[uint32](len(in.alias) - 1)
	if err != nil {
		panic(fmt.Errorf("types: alias info overflow: %w", err))
	}
	return slot
}
