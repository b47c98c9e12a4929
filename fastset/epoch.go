package fastset

import "math"

// tombstone marks a slot as absent in every generation. Live generations
// start at 1 and never take this value.
const tombstone uint32 = 0

// EpochSet is a sparse membership set over [0,n) with O(1) Clear.
//
// Each slot stores the generation in which its key was last inserted.
// A key is a member iff its stamp equals the current generation. Remove
// writes the tombstone, so a removed key can never match a later
// generation no matter how many operations follow.
//
// The zero value is not usable; construct with NewEpochSet.
type EpochSet struct {
	stamps     []uint32
	generation uint32
}

// NewEpochSet returns an empty set able to hold keys in [0,n).
// Complexity: O(n) time and space.
func NewEpochSet(n int) *EpochSet {
	return &EpochSet{
		stamps:     make([]uint32, n),
		generation: 1,
	}
}

// Cap returns the key universe size n.
func (s *EpochSet) Cap() int { return len(s.stamps) }

// Insert adds k to the set. Inserting a present key is a no-op.
func (s *EpochSet) Insert(k int) {
	s.stamps[k] = s.generation
}

// HasInsert inserts k and reports whether it was absent before the call.
func (s *EpochSet) HasInsert(k int) bool {
	if s.stamps[k] == s.generation {
		return false
	}
	s.stamps[k] = s.generation

	return true
}

// Remove deletes k from the set. Removing an absent key is a no-op.
func (s *EpochSet) Remove(k int) {
	s.stamps[k] = tombstone
}

// Contains reports whether k is in the set.
func (s *EpochSet) Contains(k int) bool {
	return s.stamps[k] == s.generation
}

// Clear empties the set by advancing the generation.
//
// When the generation counter is exhausted every slot is reset to the
// tombstone and the generation restarts at 1, which costs O(n) once per
// 2^32-1 clears.
func (s *EpochSet) Clear() {
	if s.generation == math.MaxUint32 {
		for i := range s.stamps {
			s.stamps[i] = tombstone
		}
		s.generation = 0
	}
	s.generation++
}
