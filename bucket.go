package hashset

import "slices"

// bucket holds the elements whose hash maps to one slot.
type bucket[T comparable] struct {
	items []T
}

func (b *bucket[T]) contains(value T) bool {
	return slices.Contains(b.items, value)
}

// add appends value unless an equal element is already present.
func (b *bucket[T]) add(value T) bool {
	if b.contains(value) {
		return false
	}
	b.items = append(b.items, value)
	return true
}

// push appends value without the duplicate check. Only rehash uses it, where
// every element is already known to be unique.
func (b *bucket[T]) push(value T) {
	b.items = append(b.items, value)
}

func (b *bucket[T]) len() int {
	return len(b.items)
}
