package sprite

import "iter"

// DefaultCapacity is the starting capacity of a Set and the block size it grows by.
const DefaultCapacity = 4

// Set is an ordered, growable collection of bodies.
// Insertion order is draw order and collision-test order.
// Capacity grows in fixed blocks of DefaultCapacity: tile counts are small and
// fixed at load time, so a few extra reallocations never matter.
type Set struct {
	bodies []Body
}

// NewSet creates an empty set with DefaultCapacity room.
func NewSet() *Set {
	return &Set{bodies: make([]Body, 0, DefaultCapacity)}
}

// Append adds a body to the end of the set.
func (s *Set) Append(b Body) {
	if len(s.bodies) == cap(s.bodies) {
		grown := make([]Body, len(s.bodies), cap(s.bodies)+DefaultCapacity)
		copy(grown, s.bodies)
		s.bodies = grown
	}
	s.bodies = append(s.bodies, b)
}

// Len returns the number of bodies.
func (s *Set) Len() int {
	return len(s.bodies)
}

// Cap returns the current capacity.
func (s *Set) Cap() int {
	return cap(s.bodies)
}

// At returns a pointer to the i-th body for in-place updates.
// Panics if i is out of range.
func (s *Set) At(i int) *Body {
	return &s.bodies[i]
}

// All iterates over the bodies in order, yielding index and a mutable pointer.
func (s *Set) All() iter.Seq2[int, *Body] {
	return func(yield func(int, *Body) bool) {
		for i := range s.bodies {
			if !yield(i, &s.bodies[i]) {
				return
			}
		}
	}
}

// Bodies returns the underlying slice. Callers must not append to it.
func (s *Set) Bodies() []Body {
	return s.bodies
}
