package generate

import "golang.org/x/exp/constraints"

// Number constrains the element types accepted by Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToList materializes the surviving elements in source order.
func (g Generator[A, B]) ToList() []B {
	result := make([]B, 0, len(g.items))
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return result
		}
		result = append(result, head.Unwrap())
		g = rest
	}
}

// Foldl folds the surviving elements left to right. The combiner receives the
// element before the accumulator, so folding with a prepend builds the
// reversed list.
func Foldl[A, B, C any](g Generator[A, B], initial C, fn func(B, C) C) C {
	acc := initial
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return acc
		}
		acc = fn(head.Unwrap(), acc)
		g = rest
	}
}

// Foldr folds the surviving elements right to left, computing
// fn(x1, fn(x2, ... fn(xn, initial))). On an empty or fully filtered
// generator it returns initial.
func Foldr[A, B, C any](g Generator[A, B], initial C, fn func(B, C) C) C {
	items := g.ToList()
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(items[i], acc)
	}
	return acc
}

// Any returns true if any surviving element matches the predicate. It stops
// consuming at the first match.
func (g Generator[A, B]) Any(predicate func(B) bool) bool {
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return false
		}
		if predicate(head.Unwrap()) {
			return true
		}
		g = rest
	}
}

// All returns true if every surviving element matches the predicate. It stops
// consuming at the first mismatch; an empty generator satisfies All.
func (g Generator[A, B]) All(predicate func(B) bool) bool {
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return true
		}
		if !predicate(head.Unwrap()) {
			return false
		}
		g = rest
	}
}

// Find returns the first surviving element matching the predicate.
func (g Generator[A, B]) Find(predicate func(B) bool) Option[B] {
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return None[B]()
		}
		if predicate(head.Unwrap()) {
			return head
		}
		g = rest
	}
}

// ForEach applies fn to each surviving element in source order.
func (g Generator[A, B]) ForEach(fn func(B)) {
	for {
		head, rest := g.Next()
		if head.IsNone() {
			return
		}
		fn(head.Unwrap())
		g = rest
	}
}

// Length returns the number of surviving elements.
func (g Generator[A, B]) Length() int {
	return Foldl(g, 0, func(_ B, n int) int { return n + 1 })
}

// Sum adds the surviving elements. An empty generator sums to 0.
func Sum[A any, B Number](g Generator[A, B]) B {
	return Foldl(g, 0, func(item, acc B) B { return acc + item })
}

// Product multiplies the surviving elements. An empty generator multiplies to 1.
func Product[A any, B Number](g Generator[A, B]) B {
	return Foldl(g, 1, func(item, acc B) B { return acc * item })
}
