package stream

import (
	"cmp"

	"github.com/lguimbarda/min-stream/stream/container"
	"github.com/lguimbarda/min-stream/stream/core"
)

// FromSlice creates a sequence-kind stage borrowing the given slice.
// The slice is not copied: the caller must not mutate it while the
// stage, or any stage built from it, is still in use.
func FromSlice[T any](items []T) Stage[T] {
	return core.New(items, nil)
}

// Of creates a sequence-kind stage over the given values.
func Of[T any](values ...T) Stage[T] {
	return FromSlice(values)
}

// FromSequence creates a stage borrowing the sequence's elements.
func FromSequence[T any](seq *container.Sequence[T]) Stage[T] {
	return core.New[T](seq.Values(), func() Container[T] {
		return container.NewSequence[T]()
	})
}

// FromHashSet creates a hash-set-kind stage borrowing the set's
// elements, in the set's insertion order. Filtering the stage keeps
// the hash-set kind.
func FromHashSet[T comparable](set *container.HashSet[T]) Stage[T] {
	return core.New[T](set.Values(), func() Container[T] {
		return container.NewHashSet[T]()
	})
}

// FromOrderedSet creates an ordered-set-kind stage borrowing the set's
// elements, in ascending order.
func FromOrderedSet[T cmp.Ordered](set *container.OrderedSet[T]) Stage[T] {
	return core.New[T](set.Values(), func() Container[T] {
		return container.NewOrderedSet[T]()
	})
}

// Range creates a sequence-kind stage of the integers from start
// (inclusive) to end (exclusive). If start >= end the stage is empty.
func Range(start, end int) Stage[int] {
	if start >= end {
		return Empty[int]()
	}
	items := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, i)
	}
	return FromSlice(items)
}

// Empty creates a sequence-kind stage with no elements.
func Empty[T any]() Stage[T] {
	return core.New[T](nil, nil)
}
