package core

// Terminal operations consume the stage's window and produce a plain
// value. None of them construct further stages and all of them are
// total over an empty window except the seedless Reduce, whose
// non-empty precondition is enforced with a panic.

// ForEach invokes the consumer once per element, in range order.
func (s Stage[T]) ForEach(consumer func(T)) {
	for _, v := range s.view {
		consumer(v)
	}
}

// ForEachIndexed invokes the consumer once per element with its
// zero-based position in the window, in range order.
func (s Stage[T]) ForEachIndexed(consumer func(int, T)) {
	for i, v := range s.view {
		consumer(i, v)
	}
}

// Reduce folds the window left to right, seeding the accumulator with
// the first element. The window must be non-empty; Reduce panics on an
// empty window. Use Fold when the window may be empty.
func (s Stage[T]) Reduce(reducer func(acc, value T) T) T {
	if len(s.view) == 0 {
		panic("stream: Reduce of empty stage")
	}
	acc := s.view[0]
	for _, v := range s.view[1:] {
		acc = reducer(acc, v)
	}
	return acc
}

// Any reports whether the predicate holds for at least one element,
// short-circuiting at the first hit. Any of an empty window is false.
func (s Stage[T]) Any(predicate func(T) bool) bool {
	for _, v := range s.view {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether the predicate holds for every element,
// short-circuiting at the first miss. All of an empty window is
// vacuously true.
func (s Stage[T]) All(predicate func(T) bool) bool {
	for _, v := range s.view {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Fold folds the window left to right starting from seed. Fold of an
// empty window returns the seed unchanged.
func Fold[T, R any](s Stage[T], seed R, reducer func(acc R, value T) R) R {
	acc := seed
	for _, v := range s.view {
		acc = reducer(acc, v)
	}
	return acc
}

// Collect copies the window into a fresh slice, in range order.
func Collect[T any](s Stage[T]) []T {
	return s.Values()
}

// CollectInto inserts every element of the window into dst, in range
// order, and returns dst. The destination kind is the caller's choice;
// set kinds deduplicate through their insert.
func CollectInto[C Container[T], T any](s Stage[T], dst C) C {
	for _, v := range s.view {
		dst.Insert(v)
	}
	return dst
}
