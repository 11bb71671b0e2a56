// Package core implements the stage machinery behind the stream
// package: a generic range holder over some container's elements, the
// narrowing and transforming operations that produce further stages,
// and the terminal operations that consume a stage.
//
// Most users should import the stream package instead; this package is
// the low-level surface.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other stream packages.
package core

// Container is the insertion contract a stage needs from a container
// kind. The concrete kinds live in the container package and satisfy
// this interface structurally; core itself only ever ships values
// through it.
type Container[T any] interface {
	Insert(value T)
	Values() []T
	Len() int
}

// Factory produces an empty container of some kind. A stage captures
// the factory of its own kind once, at construction, and hands it to
// every same-kind rebuild (Filter, same-kind Collect) downstream.
type Factory[T any] func() Container[T]

// Stage is one link in a pipeline. It holds a read-only window over
// some container's elements and the factory of that container's kind.
//
// The window is a plain slice: the slice header is the [start, end)
// range and the backing array is the storage it reads. Narrowing
// re-slices the window; transforming stages build a fresh backing
// array and window all of it. Because a slice keeps its backing array
// reachable, storage built by an intermediate stage lives exactly as
// long as some stage still views it.
//
// A Stage never mutates the elements it views and is never mutated
// after construction, so stages are safe to share and to read
// concurrently. Mutating a source container while a stage borrowed
// from it is still in use is the caller's bug, as with any Go slice
// aliasing.
type Stage[T any] struct {
	view  []T
	fresh Factory[T]
}

// New creates a stage viewing the given elements. The stage borrows
// the slice; it is not copied. A nil factory defaults to the
// sequence kind.
func New[T any](values []T, fresh Factory[T]) Stage[T] {
	if fresh == nil {
		fresh = newSequence[T]
	}
	return Stage[T]{view: values, fresh: fresh}
}

// Len returns the number of elements in the stage's window.
func (s Stage[T]) Len() int { return len(s.view) }

// Values returns a copy of the elements in the stage's window, in
// range order.
func (s Stage[T]) Values() []T {
	out := make([]T, len(s.view))
	copy(out, s.view)
	return out
}

// sequence is the default container kind for stages whose kind is not
// dictated by a source container: an append-ordered buffer. It is the
// core-local twin of container.Sequence, kept here so core stays free
// of imports.
type sequence[T any] struct {
	elems []T
}

func newSequence[T any]() Container[T] { return &sequence[T]{} }

func (s *sequence[T]) Insert(value T) { s.elems = append(s.elems, value) }

func (s *sequence[T]) Values() []T { return s.elems }

func (s *sequence[T]) Len() int { return len(s.elems) }
