package domset

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

func TestNewContext_InitialState(t *testing.T) {
	g := square(t)
	c, err := NewContext(g)
	require.NoError(t, err)

	require.False(t, c.IsDominated())
	require.Equal(t, 4, c.Undominated())
	require.Equal(t, 0, c.Mark())
	for v := core.Vertex(0); v < 4; v++ {
		assert.Equal(t, Black, c.Color(v))
		assert.Equal(t, 2, c.BlackNeighbors(v))
		assert.Equal(t, 0, c.WhiteNeighbors(v))
		assert.Equal(t, 0, c.DomAmount(v))
	}
	require.NoError(t, c.CheckInvariants())
}

func TestNewContext_Errors(t *testing.T) {
	_, err := NewContext(nil)
	require.ErrorIs(t, err, ErrNilGraph)

	g := square(t)
	g.Invalidate(1)
	_, err = NewContext(g)
	require.ErrorIs(t, err, ErrGraphInUse)
}

// Path a-b-c: selecting b dominates everything and retires b.
func TestSelect_UpdatesCounters(t *testing.T) {
	g := graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}})
	c, err := NewContext(g)
	require.NoError(t, err)

	c.Select(1)
	require.NoError(t, c.CheckInvariants())
	require.True(t, c.IsDominated())
	require.True(t, c.IsSelected(1))
	require.False(t, c.IsActive(1))
	require.Equal(t, []core.Vertex{1}, c.Solution())
	require.Equal(t, 1, c.DomAmount(1))
	require.Equal(t, White, c.Color(0))
	require.Equal(t, White, c.Color(2))
	// a and c lost their only neighbor from the active set
	require.Equal(t, 0, c.BlackNeighbors(0)+c.WhiteNeighbors(0))
	// b still sees its active neighbors, now White
	require.Equal(t, 0, c.BlackNeighbors(1))
	require.Equal(t, 2, c.WhiteNeighbors(1))
	require.Equal(t, []Operation{{V: 1, Color: Black, Kind: OpSelect}}, c.Journal())
}

func TestExclude_WhiteRetiresBlackStays(t *testing.T) {
	g := graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}})
	c, err := NewContext(g)
	require.NoError(t, err)

	c.Exclude(0) // Black: stays active
	require.True(t, c.IsExcluded(0))
	require.True(t, c.IsActive(0))
	require.Equal(t, 3, c.Undominated())

	c.Select(2) // b turns White
	c.Exclude(1)
	require.False(t, c.IsExcluded(1), "white exclusion retires instead of marking")
	require.False(t, c.IsActive(1))
	require.Equal(t, 0, c.WhiteNeighbors(0))
	require.NoError(t, c.CheckInvariants())

	c.Rollback(0)
	require.NoError(t, c.CheckInvariants())
	require.False(t, c.IsExcluded(0))
	require.Equal(t, 3, c.Undominated())
}

func TestSelect_Rejections(t *testing.T) {
	g := graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})
	c, err := NewContext(g)
	require.NoError(t, err)

	c.Select(1)
	requireInvariantPanic(t, "Select", func() { c.Select(1) })
	requireInvariantPanic(t, "Exclude", func() { c.Exclude(1) })

	c.Exclude(3) // Black exclusion
	requireInvariantPanic(t, "Select", func() { c.Select(3) })
	requireInvariantPanic(t, "Exclude", func() { c.Exclude(3) })

	c.Exclude(0) // White exclusion: a is dominated by b
	requireInvariantPanic(t, "Select", func() { c.Select(0) })
	requireInvariantPanic(t, "Exclude", func() { c.Exclude(0) })

	// failed calls leave no trace
	require.Equal(t, 3, c.Mark())
	require.NoError(t, c.CheckInvariants())
}

func TestRollback_Rejections(t *testing.T) {
	c, err := NewContext(square(t))
	require.NoError(t, err)

	requireInvariantPanic(t, "Rollback", func() { c.Rollback(1) })
	requireInvariantPanic(t, "Rollback", func() { c.Rollback(-1) })

	c.journal = append(c.journal, Operation{V: 0, Color: Black, Kind: OpIgnore})
	requireInvariantPanic(t, "Rollback", func() { c.Rollback(0) })
}

func TestRollback_ToCurrentMarkIsNoop(t *testing.T) {
	c, err := NewContext(square(t))
	require.NoError(t, err)
	c.Select(0)
	before := takeSnapshot(c)
	c.Rollback(c.Mark())
	require.Empty(t, cmp.Diff(before, takeSnapshot(c)))
}

// Parallel edges count with multiplicity in dom.
func TestSelect_ParallelEdges(t *testing.T) {
	g := graphOf(t, [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}})
	c, err := NewContext(g)
	require.NoError(t, err)
	require.Equal(t, 3, c.BlackNeighbors(1))

	c.Select(0)
	require.Equal(t, 2, c.DomAmount(1))
	require.Equal(t, 0, c.BlackNeighbors(2))
	require.Equal(t, 1, c.WhiteNeighbors(2))
	require.NoError(t, c.CheckInvariants())
	c.Rollback(0)
	require.NoError(t, c.CheckInvariants())
	require.Equal(t, 0, c.DomAmount(1))
}

// TestRollback_RoundTrip drives random legal operation sequences and checks
// that every rollback restores the exact state captured at its mark.
func TestRollback_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for round := 0; round < 20; round++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(int64(round))},
			builder.RandomSparse(14, 0.25),
		)
		c, err := NewContext(g)
		require.NoError(t, err)

		type saved struct {
			mark int
			snap snapshot
		}
		var stack []saved
		for step := 0; step < 60; step++ {
			if rng.Intn(4) == 0 {
				stack = append(stack, saved{mark: c.Mark(), snap: takeSnapshot(c)})
			}
			if len(stack) > 0 && rng.Intn(5) == 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				c.Rollback(top.mark)
				require.Empty(t, cmp.Diff(top.snap, takeSnapshot(c)), "round %d step %d", round, step)
				continue
			}

			var legal []core.Vertex
			for v := range g.Active() {
				if !c.IsExcluded(v) {
					legal = append(legal, v)
				}
			}
			if len(legal) == 0 {
				continue
			}
			v := legal[rng.Intn(len(legal))]
			if rng.Intn(2) == 0 {
				c.Select(v)
			} else {
				c.Exclude(v)
			}
			require.NoError(t, c.CheckInvariants(), "round %d step %d", round, step)
		}
		c.Rollback(0)
		require.NoError(t, c.CheckInvariants())
		require.Equal(t, g.Order(), g.Size(), "graph fully restored")
		require.Equal(t, g.Order(), c.Undominated())
	}
}

// IsDominated agrees with a direct check over the active vertices.
func TestIsDominated_MatchesDefinition(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(12, 0.3))
	c, err := NewContext(g)
	require.NoError(t, err)

	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if !c.IsActive(v) || c.IsExcluded(v) {
			continue
		}
		c.Select(v)
		want := true
		for u := range g.Active() {
			if c.DomAmount(u) == 0 {
				want = false
			}
		}
		require.Equal(t, want, c.IsDominated())
	}
}
