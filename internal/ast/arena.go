package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a generic bump allocator. Values are appended and referenced by
// a dense, 1-based index; index 0 is reserved to mean "absent".
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena with capHint as a capacity hint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	elem := new(T)
	*elem = value
	a.data = append(a.data, elem)
	return a.Len()
}

// Get returns a pointer to the element at the 1-based index, or nil for 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Slice returns a copy of every allocated value, in allocation order.
func (a *Arena[T]) Slice() []T {
	result := make([]T, len(a.data))
	for i, ptr := range a.data {
		result[i] = *ptr
	}
	return result
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena length overflow: %w", err))
	}
	return n
}
