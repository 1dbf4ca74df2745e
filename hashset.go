package hashset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/fortressi/hashset/set"
	"github.com/sirupsen/logrus"
)

var _ set.Set[int] = (*HashSet[int])(nil)

// HashSet is a set of unique values stored in a chained hash table.
//
// The zero value is an empty set with the default configuration.
type HashSet[T comparable] struct {
	buckets    []bucket[T]
	count      int
	loadFactor float64
	log        logrus.FieldLogger
}

// New returns an empty set with DefaultCapacity buckets and
// DefaultLoadFactor.
func New[T comparable]() *HashSet[T] {
	s := &HashSet[T]{}
	s.init(DefaultConfig())
	return s
}

// NewWithConfig returns an empty set built from cfg.
func NewWithConfig[T comparable](cfg Config) (*HashSet[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &HashSet[T]{}
	s.init(cfg.withDefaults())
	return s, nil
}

func (s *HashSet[T]) init(cfg Config) {
	s.buckets = make([]bucket[T], cfg.InitialCapacity)
	s.loadFactor = cfg.LoadFactor
	s.log = cfg.Logger
}

// Contains reports whether value is in the set.
func (s *HashSet[T]) Contains(value T) bool {
	if len(s.buckets) == 0 {
		return false
	}
	return s.buckets[slot(hashOf(value), len(s.buckets))].contains(value)
}

// Add inserts value and reports whether it was not already present. The
// bucket array may grow before the value is placed.
func (s *HashSet[T]) Add(value T) bool {
	if s.Contains(value) {
		return false
	}
	if s.buckets == nil {
		s.init(DefaultConfig())
	}
	s.ensureCapacity(s.count + 1)
	i := slot(hashOf(value), len(s.buckets))
	s.count++
	return s.buckets[i].add(value)
}

// With adds value and returns s, so insertions can be chained:
//
//	s := hashset.New[int]().With(1).With(2)
func (s *HashSet[T]) With(value T) *HashSet[T] {
	s.Add(value)
	return s
}

// Len returns the number of elements in the set.
func (s *HashSet[T]) Len() int {
	return s.count
}

// Buckets returns the length of the current bucket array.
func (s *HashSet[T]) Buckets() int {
	return len(s.buckets)
}

// LoadFactor returns the ratio of elements to buckets above which the set
// grows.
func (s *HashSet[T]) LoadFactor() float64 {
	if s.loadFactor == 0 {
		return DefaultLoadFactor
	}
	return s.loadFactor
}

// All yields every element in bucket-index order, then insertion order
// within each bucket. The set must not be modified during iteration.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.buckets {
			for _, v := range s.buckets[i].items {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// String renders the elements as "[a, b, c]" in the order All yields them.
func (s *HashSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// ensureCapacity doubles the bucket array until size elements fit under the
// load factor.
func (s *HashSet[T]) ensureCapacity(size int) {
	for float64(size)/float64(len(s.buckets)) > s.loadFactor {
		s.rehash()
	}
}

// rehash replaces the bucket array with one twice as long and redistributes
// every element into it.
func (s *HashSet[T]) rehash() {
	grown := make([]bucket[T], 2*len(s.buckets))
	for i := range s.buckets {
		for _, v := range s.buckets[i].items {
			grown[slot(hashOf(v), len(grown))].push(v)
		}
	}

	s.log.WithFields(logrus.Fields{
		"from":  len(s.buckets),
		"to":    len(grown),
		"count": s.count,
	}).Debug("hashset: growing bucket array")

	s.buckets = grown
}
