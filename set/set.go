package set

import "iter"

// Set is the method set shared by the set types in this module.
type Set[T comparable] interface {
	// Add inserts k and reports whether it was not already present.
	Add(k T) bool
	Contains(k T) bool
	Len() int
	All() iter.Seq[T]
}

var _ Set[int] = (*Map[int])(nil)

// Map is a Set backed by a Go map. The zero value is an empty set.
type Map[T comparable] struct {
	set map[T]struct{}
}

// NewMap returns a Map holding the given values.
func NewMap[T comparable](values ...T) *Map[T] {
	m := &Map[T]{}
	for _, v := range values {
		m.Add(v)
	}
	return m
}

func (s *Map[T]) Add(k T) bool {
	if s.set == nil {
		s.set = make(map[T]struct{})
	}
	if _, ok := s.set[k]; ok {
		return false
	}
	s.set[k] = struct{}{}
	return true
}

func (s *Map[T]) Contains(k T) bool {
	_, ok := s.set[k]
	return ok
}

func (s *Map[T]) Len() int {
	return len(s.set)
}

// All yields the elements in unspecified order.
func (s *Map[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.set {
			if !yield(k) {
				return
			}
		}
	}
}
