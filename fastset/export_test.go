package fastset

// SetGeneration forces the generation counter so overflow handling can be
// exercised without 2^32 clears.
func (s *EpochSet) SetGeneration(g uint32) { s.generation = g }

// Generation exposes the current generation counter.
func (s *EpochSet) Generation() uint32 { return s.generation }
