package domset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
)

// twoSquaresAndPath is C4 {a,b,c,d}, C4 {e,f,g,h}, path x-y-z and isolated q.
func twoSquaresAndPath(t testing.TB) *core.Graph {
	return graphOf(t, [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"},
		{"e", "f"}, {"f", "g"}, {"g", "h"}, {"h", "e"},
		{"x", "y"}, {"y", "z"},
	}, "q")
}

func TestSolveComponents_JoinsComponents(t *testing.T) {
	g := twoSquaresAndPath(t)
	res, err := SolveComponents(g, WithParanoid())
	require.NoError(t, err)
	require.True(t, res.Optimal)
	require.Equal(t, 6, res.Size) // 2 + 2 + 1 + 1
	require.True(t, isDominating(g, res.Solution))
	require.Equal(t, g.Labels(res.Solution), res.Labels)
	require.Contains(t, res.Labels, "q")
	require.Contains(t, res.Labels, "y")

	whole, err := Solve(g)
	require.NoError(t, err)
	require.Equal(t, whole.Size, res.Size)
	require.Equal(t, g.Order(), g.Size())
}

func TestSolveComponents_AgreesWithSolve(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(18, 0.08),
		)
		split, err := SolveComponents(g)
		require.NoError(t, err)
		whole, err := Solve(g)
		require.NoError(t, err)
		require.Equal(t, whole.Size, split.Size, "seed %d", seed)
		require.True(t, isDominating(g, split.Solution), "seed %d", seed)
	}
}

func TestSolveComponents_Connected(t *testing.T) {
	g := square(t)
	res, err := SolveComponents(g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Size)
	require.True(t, res.Optimal)
}

func TestSolveComponents_InputErrors(t *testing.T) {
	_, err := SolveComponents(nil)
	require.ErrorIs(t, err, ErrNilGraph)

	g := square(t)
	g.Invalidate(0)
	_, err = SolveComponents(g)
	require.ErrorIs(t, err, ErrGraphInUse)
	g.Revalidate(0)

	_, err = SolveComponents(g, WithTimeLimit(-time.Second))
	require.ErrorIs(t, err, ErrBadTimeLimit)
}

func TestSolveComponents_StopKeepsCover(t *testing.T) {
	g := twoSquaresAndPath(t)

	res, err := SolveComponents(g, WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, ErrTimeLimit)
	require.False(t, res.Optimal)
	require.True(t, isDominating(g, res.Solution))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SolveComponentsContext(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveComponents_OnImproveCountsSolvedComponents(t *testing.T) {
	g := twoSquaresAndPath(t)
	var last int
	res, err := SolveComponents(g, WithOnImprove(func(size int, _ uint64) error {
		last = size
		return nil
	}))
	require.NoError(t, err)
	// the isolated q is appended after the last searched component
	require.Equal(t, res.Size-1, last)
}

func TestGreedyCover(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(6))
	cover := greedyCover(g)
	require.Len(t, cover, 1)
	require.True(t, isDominating(g, cover))
}
