// Package container provides the container kinds a stream stage can
// materialize into, behind a single small insertion contract.
//
// A kind is registered by implementing Container plus a constructor;
// no other package needs to change to support a new kind.
package container

import "cmp"

// Container is the capability a container kind exposes to the stream
// machinery: an insertion operation appropriate to the kind and an
// ordered, read-only view of the elements.
//
// Values must return the container's own backing slice without copying;
// callers treat it as read-only. The slice must remain valid until the
// next Insert.
type Container[T any] interface {
	// Insert places a value into the container. Sequence kinds append;
	// set kinds insert only if the value is absent.
	Insert(value T)

	// Values returns the elements in iteration order.
	Values() []T

	// Len returns the number of elements.
	Len() int
}

// Sequence is an append-ordered container. Duplicates are kept and
// insertion order is iteration order.
type Sequence[T any] struct {
	elems []T
}

// NewSequence creates an empty Sequence.
func NewSequence[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// SequenceOf creates a Sequence holding the given values.
func SequenceOf[T any](values ...T) *Sequence[T] {
	s := &Sequence[T]{elems: make([]T, len(values))}
	copy(s.elems, values)
	return s
}

func (s *Sequence[T]) Insert(value T) { s.elems = append(s.elems, value) }

func (s *Sequence[T]) Values() []T { return s.elems }

func (s *Sequence[T]) Len() int { return len(s.elems) }

// HashSet is a unique container with insertion-ordered iteration.
// Go maps have no stable iteration order, so membership is tracked in a
// map while the elements themselves live in an ordered slice.
type HashSet[T comparable] struct {
	index map[T]struct{}
	elems []T
}

// NewHashSet creates an empty HashSet.
func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{index: make(map[T]struct{})}
}

// HashSetOf creates a HashSet holding the given values, deduplicated in
// first-seen order.
func HashSetOf[T comparable](values ...T) *HashSet[T] {
	s := NewHashSet[T]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func (s *HashSet[T]) Insert(value T) {
	if _, ok := s.index[value]; ok {
		return
	}
	s.index[value] = struct{}{}
	s.elems = append(s.elems, value)
}

func (s *HashSet[T]) Values() []T { return s.elems }

func (s *HashSet[T]) Len() int { return len(s.elems) }

// Contains reports whether value is in the set.
func (s *HashSet[T]) Contains(value T) bool {
	_, ok := s.index[value]
	return ok
}

// OrderedSet is a unique container iterated in ascending element order,
// backed by a sorted slice.
type OrderedSet[T cmp.Ordered] struct {
	elems []T
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[T cmp.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{}
}

// OrderedSetOf creates an OrderedSet holding the given values.
func OrderedSetOf[T cmp.Ordered](values ...T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func (s *OrderedSet[T]) Insert(value T) {
	i := s.search(value)
	if i < len(s.elems) && s.elems[i] == value {
		return
	}
	s.elems = append(s.elems, value)
	copy(s.elems[i+1:], s.elems[i:])
	s.elems[i] = value
}

func (s *OrderedSet[T]) Values() []T { return s.elems }

func (s *OrderedSet[T]) Len() int { return len(s.elems) }

// Contains reports whether value is in the set.
func (s *OrderedSet[T]) Contains(value T) bool {
	i := s.search(value)
	return i < len(s.elems) && s.elems[i] == value
}

// search returns the smallest index at which value could be inserted
// while keeping elems sorted.
func (s *OrderedSet[T]) search(value T) int {
	lo, hi := 0, len(s.elems)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.elems[mid] < value {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
