package source

import "golang.org/x/text/unicode/norm"

// StringID is an interned name handle. Two identifiers denote the same name
// exactly when their StringIDs are equal.
type StringID uint32

// NoStringID is the zero sentinel; every Interner maps it to the empty string.
const NoStringID StringID = 0

// Interner deduplicates name spellings into dense StringIDs. One interner is
// shared across the lexer, the binder and the type interner of a run, so IDs
// are comparable between all of them.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, registering it on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Own copy, so the ID never aliases a caller's scratch buffer.
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternIdent interns an identifier after NFC normalization, so the composed
// and decomposed spellings of one name share a single ID.
func (in *Interner) InternIdent(s string) StringID {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return in.Intern(s)
}

// InternIdentBytes is InternIdent for a byte slice, avoiding a conversion on
// the already-normalized fast path.
func (in *Interner) InternIdentBytes(b []byte) StringID {
	if !norm.NFC.IsNormal(b) {
		b = norm.NFC.Bytes(b)
	}
	return in.Intern(string(b))
}

// Lookup returns the spelling for id, or ("", false) for an unknown ID.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the spelling for id and panics on an unknown ID.
// An unknown ID here is a programming error, not user input.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Has reports whether id was produced by this interner.
func (in *Interner) Has(id StringID) bool {
	return int(id) < len(in.byID)
}

// Len returns the number of interned strings, counting NoStringID.
func (in *Interner) Len() int {
	return len(in.byID)
}
