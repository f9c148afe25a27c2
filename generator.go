// Package generate provides a lazy sequence transformer with stage fusion:
// composed Map/Filter/Remove operations collapse into a single per-element
// function that is applied exactly once per source element when the
// generator is consumed, in one pass, regardless of chain length.
package generate

// Generator represents a lazy traversal over a finite source sequence.
//
// A Generator holds the remaining untransformed source elements and a single
// fused stage function. Composing operations rebuild only the stage;
// structural operations rebuild only the items. Every operation returns a new
// Generator value, so a Generator denotes the state of an in-progress
// traversal and is never mutated in place. Derived generators may share the
// backing array of items read-only.
type Generator[A, B any] struct {
	items []A
	stage func(A) Signal[B]
}

// FromList creates a generator over the elements of a slice.
func FromList[A any](items []A) Generator[A, A] {
	return Generator[A, A]{
		items: items,
		stage: func(item A) Signal[A] { return Keep(item) },
	}
}

// Singleton creates a generator over a single value.
func Singleton[A any](item A) Generator[A, A] {
	return FromList([]A{item})
}

// Of creates a generator from values.
func Of[A any](items ...A) Generator[A, A] {
	return FromList(items)
}

// Empty creates a generator with no elements.
func Empty[A any]() Generator[A, A] {
	return FromList[A](nil)
}

// Map transforms each surviving element using the given function.
//
// The new function runs after every previously composed stage, so pipeline
// order is preserved per element. The source items are untouched and no
// intermediate sequence is materialized.
func Map[A, B, C any](g Generator[A, B], fn func(B) C) Generator[A, C] {
	stage := g.stage
	return Generator[A, C]{
		items: g.items,
		stage: func(item A) Signal[C] {
			out := stage(item)
			if out.IsSkip() {
				return Skip[C]()
			}
			return Keep(fn(out.Value()))
		},
	}
}

// Filter keeps only the surviving elements matching the predicate.
//
// The predicate is never evaluated on an element already discarded by an
// earlier stage.
func Filter[A, B any](g Generator[A, B], predicate func(B) bool) Generator[A, B] {
	stage := g.stage
	return Generator[A, B]{
		items: g.items,
		stage: func(item A) Signal[B] {
			out := stage(item)
			if out.IsKeep() && predicate(out.Value()) {
				return out
			}
			return Skip[B]()
		},
	}
}

// Remove discards the surviving elements matching the predicate.
func Remove[A, B any](g Generator[A, B], predicate func(B) bool) Generator[A, B] {
	return Filter(g, func(item B) bool { return !predicate(item) })
}

// Next returns the first surviving element and the generator positioned just
// past it. Source elements discarded by the stage chain are consumed silently.
// Once no source elements remain, Next returns None and an exhausted
// generator; that is the natural end of traversal, not an error.
func (g Generator[A, B]) Next() (Option[B], Generator[A, B]) {
	items := g.items
	for len(items) > 0 {
		head := items[0]
		items = items[1:]
		if out := g.stage(head); out.IsKeep() {
			return Some(out.Value()), Generator[A, B]{items: items, stage: g.stage}
		}
	}
	return None[B](), Generator[A, B]{items: items, stage: g.stage}
}

// Peek returns the first surviving element without consuming it.
func (g Generator[A, B]) Peek() Option[B] {
	head, _ := g.Next()
	return head
}

// Reverse returns a generator over the remaining source items in reverse
// order. The stage chain is untouched; only traversal order changes.
func (g Generator[A, B]) Reverse() Generator[A, B] {
	reversed := make([]A, len(g.items))
	for i, item := range g.items {
		reversed[len(g.items)-1-i] = item
	}
	return Generator[A, B]{items: reversed, stage: g.stage}
}

// Take keeps the first n remaining source items. The window is bounded before
// the stage chain runs, so a composed filter may still discard elements from
// within it. Negative n is treated as 0; n past the end keeps everything.
func (g Generator[A, B]) Take(n int) Generator[A, B] {
	return Generator[A, B]{items: g.items[:clamp(n, len(g.items))], stage: g.stage}
}

// Drop discards the first n remaining source items. Like Take, it bounds the
// source window, not the post-filter output. Negative n is treated as 0;
// n past the end drops everything.
func (g Generator[A, B]) Drop(n int) Generator[A, B] {
	return Generator[A, B]{items: g.items[clamp(n, len(g.items)):], stage: g.stage}
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
