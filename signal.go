package generate

// Signal is the result of running one source element through a generator's
// stage chain: the element either survives with a (possibly transformed)
// value, or was discarded by some filter stage along the way.
type Signal[B any] struct {
	value B
	keep  bool
}

// Keep creates a Signal carrying a surviving value.
func Keep[B any](value B) Signal[B] {
	return Signal[B]{value: value, keep: true}
}

// Skip creates a Signal for a discarded element.
func Skip[B any]() Signal[B] {
	return Signal[B]{keep: false}
}

// IsKeep returns true if the element survived the stage chain.
func (s Signal[B]) IsKeep() bool {
	return s.keep
}

// IsSkip returns true if the element was discarded.
func (s Signal[B]) IsSkip() bool {
	return !s.keep
}

// Value returns the carried value. It is meaningful only for Keep signals;
// for Skip it is the zero value.
func (s Signal[B]) Value() B {
	return s.value
}
