// File: set.go
// Role: Insertion-ordered set used for group sets and membership sets.
// Determinism:
//   - Iteration follows first insertion; re-adding an element keeps its position.

package cooccur

import "iter"

// Set is an insertion-ordered set of comparable values.
// Sets handed out by a Graph are shared with the graph and must be treated as read-only.
type Set[T comparable] struct {
	order []T
	index map[T]struct{}
}

func newSet[T comparable]() *Set[T] {
	return &Set[T]{index: make(map[T]struct{})}
}

// add inserts v and reports whether it was absent.
func (s *Set[T]) add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)

	return true
}

// Contains reports whether v is in the set.
//
// Complexity: O(1)
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// First returns the earliest inserted element, or false for an empty set.
func (s *Set[T]) First() (T, bool) {
	if len(s.order) == 0 {
		var zero T
		return zero, false
	}

	return s.order[0], true
}

// Values returns a copy of the elements in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)

	return out
}

// All yields the elements in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.order {
			if !yield(v) {
				return
			}
		}
	}
}
