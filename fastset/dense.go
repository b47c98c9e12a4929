package fastset

import "iter"

// absent is the sparse-array value of a key that is not in the set.
const absent = -1

// DenseSet is an index-remapped set over [0,n) that supports iteration.
//
// Layout for the set {2, 5, 1} inserted in that order:
//
//	dense  = [2 5 1]
//	sparse = [-1 2 0 -1 -1 1]   // sparse[k] = position of k in dense, or -1
//
// Remove(k) moves the last dense element into k's slot and fixes its
// sparse entry, so both Insert and Remove are O(1) and iteration order
// is unspecified.
//
// T is any integer-kinded key type (core.Vertex in practice).
type DenseSet[T ~int] struct {
	dense  []T
	sparse []int
}

// NewDenseSet returns an empty set able to hold keys in [0,n).
// Complexity: O(n) time and space.
func NewDenseSet[T ~int](n int) *DenseSet[T] {
	s := &DenseSet[T]{
		dense:  make([]T, 0, n),
		sparse: make([]int, n),
	}
	for i := range s.sparse {
		s.sparse[i] = absent
	}

	return s
}

// Cap returns the key universe size n.
func (s *DenseSet[T]) Cap() int { return len(s.sparse) }

// Len returns the number of members.
func (s *DenseSet[T]) Len() int { return len(s.dense) }

// IsEmpty reports whether the set has no members.
func (s *DenseSet[T]) IsEmpty() bool { return len(s.dense) == 0 }

// InsertUnchecked appends k without a presence check.
//
// The caller guarantees k is absent. Calling it for a present key leaves
// two dense slots for k and corrupts Len and later removals; this is a
// contract violation, not a recoverable error.
func (s *DenseSet[T]) InsertUnchecked(k T) {
	s.sparse[k] = len(s.dense)
	s.dense = append(s.dense, k)
}

// Insert adds k and reports whether it was absent.
func (s *DenseSet[T]) Insert(k T) bool {
	if s.sparse[k] != absent {
		return false
	}
	s.InsertUnchecked(k)

	return true
}

// Remove deletes k and reports whether it was present.
func (s *DenseSet[T]) Remove(k T) bool {
	pos := s.sparse[k]
	if pos == absent {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[pos] = moved
	s.sparse[moved] = pos
	s.dense = s.dense[:last]
	s.sparse[k] = absent

	return true
}

// Contains reports whether k is a member.
func (s *DenseSet[T]) Contains(k T) bool {
	return s.sparse[k] != absent
}

// Index returns the current dense position of k.
// The position is only meaningful until the next Remove.
func (s *DenseSet[T]) Index(k T) (int, bool) {
	pos := s.sparse[k]

	return pos, pos != absent
}

// Clear removes every member. Complexity: O(Len()).
func (s *DenseSet[T]) Clear() {
	for _, k := range s.dense {
		s.sparse[k] = absent
	}
	s.dense = s.dense[:0]
}

// Values returns the live dense slice. It is invalidated by the next
// mutation; callers that mutate the set while walking must copy first.
func (s *DenseSet[T]) Values() []T { return s.dense }

// All yields members in dense order. Mutating the set during the range
// loop is not supported.
func (s *DenseSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, k := range s.dense {
			if !yield(k) {
				return
			}
		}
	}
}
