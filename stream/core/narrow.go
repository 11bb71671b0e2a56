package core

// Narrowing operations adjust the stage's window without touching the
// storage underneath. Take and TakeWhile keep the start and move the
// end leftward; Skip and SkipWhile keep the end and move the start
// rightward. Each runs a single bounded scan at construction.

// Take narrows the window to at most the first n elements. A count
// larger than the window clamps to the whole window; n <= 0 yields an
// empty window.
func (s Stage[T]) Take(n int) Stage[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.view) {
		n = len(s.view)
	}
	return Stage[T]{view: s.view[:n], fresh: s.fresh}
}

// TakeWhile narrows the window to the maximal prefix for which the
// predicate holds. The window ends at the first element failing the
// predicate; if the first element fails, the result is empty.
func (s Stage[T]) TakeWhile(predicate func(T) bool) Stage[T] {
	end := len(s.view)
	for i, v := range s.view {
		if !predicate(v) {
			end = i
			break
		}
	}
	return Stage[T]{view: s.view[:end], fresh: s.fresh}
}

// Skip narrows the window by dropping the first n elements.
// Over-skipping yields an empty window; n <= 0 drops nothing.
func (s Stage[T]) Skip(n int) Stage[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.view) {
		n = len(s.view)
	}
	return Stage[T]{view: s.view[n:], fresh: s.fresh}
}

// SkipWhile narrows the window by dropping the maximal prefix for
// which the predicate holds. The window begins at the first element
// failing the predicate, or is empty if the predicate holds for all.
func (s Stage[T]) SkipWhile(predicate func(T) bool) Stage[T] {
	start := len(s.view)
	for i, v := range s.view {
		if !predicate(v) {
			start = i
			break
		}
	}
	return Stage[T]{view: s.view[start:], fresh: s.fresh}
}
