package satcheck_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
	"github.com/katalvlaran/domset/satcheck"
)

func TestMinimumDominatingSet_KnownFixtures(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		ctor  builder.Constructor
		gamma int
	}{
		{"C4", builder.Cycle(4), 2},
		{"P7", builder.Path(7), 3},
		{"Star6", builder.Star(6), 1},
		{"Grid3x3", builder.Grid(3, 3), 3},
		{"K2,3", builder.CompleteBipartite(2, 3), 2},
	}
	for _, tc := range cases {
		g := builder.MustBuild(nil, tc.ctor)
		set, err := satcheck.MinimumDominatingSet(ctx, g)
		require.NoError(t, err, tc.name)
		require.Len(t, set, tc.gamma, tc.name)
		require.True(t, satcheck.Dominates(g, set), tc.name)
	}
}

func TestMinimumDominatingSet_Edges(t *testing.T) {
	ctx := context.Background()
	_, err := satcheck.MinimumDominatingSet(ctx, nil)
	require.ErrorIs(t, err, satcheck.ErrNilGraph)

	set, err := satcheck.MinimumDominatingSet(ctx, core.NewBuilder().Build())
	require.NoError(t, err)
	require.Empty(t, set)
}

// The branch-and-bound solver and the SAT oracle agree on random graphs.
func TestAgreesWithBranchAndBound(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 15; seed++ {
		g := builder.MustBuild(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(16, 0.18),
		)
		res, err := domset.Solve(g)
		require.NoError(t, err)
		require.NoError(t, satcheck.Verify(ctx, g, res.Solution), "seed %d", seed)

		set, err := satcheck.MinimumDominatingSet(ctx, g)
		require.NoError(t, err)
		require.Len(t, set, res.Size, "seed %d", seed)
	}
}

func TestVerify_Rejects(t *testing.T) {
	ctx := context.Background()
	g := builder.MustBuild(nil, builder.Path(5)) // 0-1-2-3-4, γ=2

	require.ErrorIs(t, satcheck.Verify(ctx, g, []core.Vertex{0, 4}), satcheck.ErrNotDominating)
	require.ErrorIs(t, satcheck.Verify(ctx, g, []core.Vertex{0, 2, 4}), satcheck.ErrNotMinimum)
	require.NoError(t, satcheck.Verify(ctx, g, []core.Vertex{1, 3}))
}
