package core

// Transforming operations materialize a fresh container eagerly: the
// whole input window is consumed exactly once inside the call, the
// result container is never grown again, and the returned stage views
// the result's elements for the rest of its life.

// Filter keeps the elements for which the predicate holds, preserving
// relative order. The result container is of the stage's own kind, so
// filtering a set-kind stage stays deduplicated by construction.
func (s Stage[T]) Filter(predicate func(T) bool) Stage[T] {
	dst := s.fresh()
	for _, v := range s.view {
		if predicate(v) {
			dst.Insert(v)
		}
	}
	return Stage[T]{view: dst.Values(), fresh: s.fresh}
}

// Map applies the mapper to every element in range order and returns a
// stage over the results. The result is sequence-kind: Go cannot name
// "the input's kind at a different element type" from a value alone,
// so kind-directed mapping goes through MapInto with an explicit
// factory. Map is a method-free function because Go methods cannot
// introduce the result type parameter.
func Map[T, R any](s Stage[T], mapper func(T) R) Stage[R] {
	out := make([]R, 0, len(s.view))
	for _, v := range s.view {
		out = append(out, mapper(v))
	}
	return Stage[R]{view: out, fresh: newSequence[R]}
}

// MapInto applies the mapper to every element in range order,
// inserting the results into a fresh container produced by the given
// factory. For set kinds, duplicate mapper outputs collapse through
// the kind's insert. The returned stage is of the factory's kind.
func MapInto[T, R any](s Stage[T], fresh Factory[R], mapper func(T) R) Stage[R] {
	dst := fresh()
	for _, v := range s.view {
		dst.Insert(mapper(v))
	}
	return Stage[R]{view: dst.Values(), fresh: fresh}
}
