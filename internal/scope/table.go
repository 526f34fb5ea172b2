// Package scope provides the generic nested-scope mapping the binder builds
// on: a stack of frames with shadowing lookup. The table is purely
// structural; redefinition and overload policy live in the caller.
package scope

// Table is a stack of lexical scope frames mapping keys to entries. Frame
// index is scope depth: 0 is the outermost (translation-unit) frame, which
// exists from construction and is never popped. A key may hold several
// entries in one frame; insertion order is kept so an overload set stays
// reachable as a whole.
type Table[K comparable, E any] struct {
	frames []map[K][]E
}

// NewTable returns a table with the base frame already open.
func NewTable[K comparable, E any]() *Table[K, E] {
	return &Table[K, E]{frames: make([]map[K][]E, 1)}
}

// Depth returns the current scope depth, 0 for the base frame.
func (t *Table[K, E]) Depth() int {
	return len(t.frames) - 1
}

// Push opens a nested frame and returns its depth.
func (t *Table[K, E]) Push() int {
	t.frames = append(t.frames, nil)
	return t.Depth()
}

// Pop discards the most recent frame and every binding inserted into it.
// Popping the base frame is a contract violation and panics: push and pop
// must be strictly nested.
func (t *Table[K, E]) Pop() {
	last := len(t.frames) - 1
	if last == 0 {
		panic("scope: pop of the base frame")
	}
	t.frames[last] = nil
	t.frames = t.frames[:last]
}

// Insert adds a binding to the current frame. Existing bindings are neither
// checked nor removed.
func (t *Table[K, E]) Insert(key K, entry E) {
	t.insert(len(t.frames)-1, key, entry)
}

// InsertAt adds a binding to the open frame at the given depth. The binder
// uses it to pin unresolved-type placeholders at the base frame no matter
// where the reference occurred. Panics when no frame is open at depth.
func (t *Table[K, E]) InsertAt(depth int, key K, entry E) {
	if depth < 0 || depth >= len(t.frames) {
		panic("scope: insert into a frame that is not open")
	}
	t.insert(depth, key, entry)
}

func (t *Table[K, E]) insert(depth int, key K, entry E) {
	m := t.frames[depth]
	if m == nil {
		m = make(map[K][]E)
		t.frames[depth] = m
	}
	m[key] = append(m[key], entry)
}

// Lookup returns the nearest enclosing entry for key and the depth it was
// inserted at, walking frames innermost to outermost. Within one frame the
// newest entry wins.
func (t *Table[K, E]) Lookup(key K) (entry E, depth int, ok bool) {
	for d := len(t.frames) - 1; d >= 0; d-- {
		if entries := t.frames[d][key]; len(entries) > 0 {
			return entries[len(entries)-1], d, true
		}
	}
	var zero E
	return zero, 0, false
}

// LookupLocal consults only the current frame, distinguishing "exists in an
// outer scope" from "already exists right here".
func (t *Table[K, E]) LookupLocal(key K) (entry E, ok bool) {
	entries := t.frames[len(t.frames)-1][key]
	if len(entries) == 0 {
		var zero E
		return zero, false
	}
	return entries[len(entries)-1], true
}

// AllLocal returns every entry for key in the current frame in insertion
// order. The slice is the table's own storage; callers must not modify it.
func (t *Table[K, E]) AllLocal(key K) []E {
	return t.frames[len(t.frames)-1][key]
}

// AllAt returns every entry for key in the open frame at depth, in
// insertion order. Panics when no frame is open at depth.
func (t *Table[K, E]) AllAt(depth int, key K) []E {
	if depth < 0 || depth >= len(t.frames) {
		panic("scope: read from a frame that is not open")
	}
	return t.frames[depth][key]
}
