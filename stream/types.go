// Package stream provides an eager, in-memory pipeline over Go
// collections: a chain of intermediate operations (Map, Filter, Take,
// Skip, TakeWhile, SkipWhile) composed over a sequence or set source,
// terminated by a consuming operation (ForEach, Reduce, Any, All,
// Collect).
//
// This package is the primary user-facing API. Most users should only
// need to import this package and, when collecting into set kinds, the
// stream/container subpackage. The stream/core subpackage contains the
// low-level stage machinery and is rarely needed directly.
//
// Every operation runs to completion before returning; there is no
// concurrency, no laziness beyond window narrowing, and no runtime
// error channel. Malformed compositions do not type-check.
package stream

import (
	"cmp"

	"github.com/lguimbarda/min-stream/stream/container"
	"github.com/lguimbarda/min-stream/stream/core"
)

// Type aliases for core abstractions, so users can work with the
// library without importing core directly.
type (
	// Stage is one link in a pipeline: a read-only window over some
	// container's elements, exposing the intermediate and terminal
	// operations.
	Stage[T any] = core.Stage[T]

	// Container is the insertion contract a container kind provides.
	Container[T any] = core.Container[T]

	// Factory produces an empty container of some kind. It is how a
	// result kind is chosen for MapInto.
	Factory[T any] = core.Factory[T]
)

// New creates a stage viewing the given elements without copying them.
// A nil factory defaults to the sequence kind.
func New[T any](values []T, fresh Factory[T]) Stage[T] {
	return core.New(values, fresh)
}

// Map applies the mapper to every element in range order and returns a
// sequence-kind stage over the results.
func Map[T, R any](s Stage[T], mapper func(T) R) Stage[R] {
	return core.Map(s, mapper)
}

// MapInto is Map with an explicit result kind, chosen by the factory.
func MapInto[T, R any](s Stage[T], fresh Factory[R], mapper func(T) R) Stage[R] {
	return core.MapInto(s, fresh, mapper)
}

// Fold folds the stage left to right starting from seed. Total on an
// empty stage, unlike the seedless Stage.Reduce.
func Fold[T, R any](s Stage[T], seed R, reducer func(R, T) R) R {
	return core.Fold(s, seed, reducer)
}

// Collect copies the stage's elements into a fresh slice.
func Collect[T any](s Stage[T]) []T {
	return core.Collect(s)
}

// CollectInto inserts the stage's elements into dst in range order and
// returns dst.
func CollectInto[C Container[T], T any](s Stage[T], dst C) C {
	return core.CollectInto(s, dst)
}

// Kind factories, usable directly as MapInto arguments:
//
//	halves := stream.MapInto(odds, stream.NewOrderedSet[float64], halve)

// NewSequence returns an empty sequence-kind container.
func NewSequence[T any]() Container[T] { return container.NewSequence[T]() }

// NewHashSet returns an empty insertion-ordered hash-set container.
func NewHashSet[T comparable]() Container[T] { return container.NewHashSet[T]() }

// NewOrderedSet returns an empty ascending-ordered set container.
func NewOrderedSet[T cmp.Ordered]() Container[T] { return container.NewOrderedSet[T]() }
