package ast

// Arena is append-only typed storage with 1-based indices, so the zero index
// stays free as the "no node" sentinel shared by every ID type.
type Arena[T any] struct {
	data []T
}

// NewArena returns an arena whose storage starts with capacity capHint;
// zero is allowed.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data))
}

// Get returns a pointer to the element at index, or nil for index 0.
// The pointer is invalidated by the next Allocate; do not hold it across
// allocations.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}
