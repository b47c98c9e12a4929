package domset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

func TestPivot_MinActiveDegreeLowestIndex(t *testing.T) {
	// star: hub 0 with leaves 1..4, plus edge 3-4
	g := graphOf(t, [][2]string{{"h", "x"}, {"h", "y"}, {"h", "z"}, {"h", "w"}, {"z", "w"}})
	c, err := NewContext(g)
	require.NoError(t, err)
	require.Equal(t, core.Vertex(1), c.pivot())

	c.Exclude(1) // excluded Black vertices remain pivot candidates
	require.Equal(t, core.Vertex(1), c.pivot())

	c.Select(2) // dominates y and h
	require.Equal(t, core.Vertex(1), c.pivot())
	c.Rollback(0)
}

func TestBestCover(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(5))
	c, err := NewContext(g)
	require.NoError(t, err)

	v, cov := c.bestCover()
	require.Equal(t, core.Vertex(0), v)
	require.Equal(t, 5, cov)

	c.Exclude(0)
	v, cov = c.bestCover()
	require.Equal(t, core.Vertex(1), v, "ties resolve to the lowest index")
	require.Equal(t, 2, cov)

	for leaf := core.Vertex(1); leaf < 5; leaf++ {
		c.Exclude(leaf)
	}
	_, cov = c.bestCover()
	require.Equal(t, 0, cov, "nothing selectable")
}

func TestLowerBound(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(9))
	c, err := NewContext(g)
	require.NoError(t, err)

	e := &engine{c: c, opts: DefaultOptions()}
	lb, ok := e.lowerBound()
	require.True(t, ok)
	require.Equal(t, 3, lb)

	e.opts.BoundAlgo = SimpleBound
	lb, ok = e.lowerBound()
	require.True(t, ok)
	require.Equal(t, 1, lb)

	// with every vertex excluded nothing can dominate the Black ones
	e.opts.BoundAlgo = CoverBound
	for v := core.Vertex(0); v < 9; v++ {
		c.Exclude(v)
	}
	_, ok = e.lowerBound()
	require.False(t, ok)
}

func TestSeedGreedy_LeavesContextClean(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(3, 4))
	c, err := NewContext(g)
	require.NoError(t, err)

	e := &engine{c: c, opts: DefaultOptions(), log: discardLogger()}
	before := takeSnapshot(c)
	e.seedGreedy()
	require.True(t, e.foundAny)
	require.True(t, isDominating(g, e.best))
	require.Equal(t, before, takeSnapshot(c))
}

// scanGreedy is the reference greedy: repeatedly select bestCover.
func scanGreedy(c *Context) []core.Vertex {
	mark := c.Mark()
	defer c.Rollback(mark)
	for !c.IsDominated() {
		u, cov := c.bestCover()
		if cov == 0 {
			return nil
		}
		c.Select(u)
	}
	return c.Solution()
}

func TestSeedGreedy_MatchesLinearScan(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.1),
		)
		c, err := NewContext(g)
		require.NoError(t, err)

		want := scanGreedy(c)
		e := &engine{c: c, opts: DefaultOptions(), log: discardLogger()}
		e.seedGreedy()
		require.Equal(t, want, e.best, "seed %d", seed)
	}
}

func TestByCoverage(t *testing.T) {
	require.Equal(t, -1, byCoverage(coverKey{v: 5, cov: 3}, coverKey{v: 1, cov: 2}))
	require.Equal(t, -1, byCoverage(coverKey{v: 1, cov: 2}, coverKey{v: 5, cov: 2}))
	require.Equal(t, 1, byCoverage(coverKey{v: 5, cov: 2}, coverKey{v: 1, cov: 2}))
	require.Equal(t, 0, byCoverage(coverKey{v: 4, cov: 2}, coverKey{v: 4, cov: 2}))
}
