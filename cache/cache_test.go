package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/cache"
	"github.com/katalvlaran/domset/domset"
)

func TestPutGet(t *testing.T) {
	c, err := cache.Open("")
	require.NoError(t, err)
	defer c.Close()

	g := builder.MustBuild(nil, builder.Cycle(7))
	_, hit, err := c.Get(g)
	require.NoError(t, err)
	assert.False(t, hit)

	res, err := domset.Solve(g)
	require.NoError(t, err)
	require.NoError(t, c.Put(g, res))

	got, hit, err := c.Get(g)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, res.Solution, got.Solution)
	assert.Equal(t, res.Labels, got.Labels)
	assert.Equal(t, res.Nodes, got.Nodes)
	assert.True(t, got.Optimal)

	other := builder.MustBuild(nil, builder.Cycle(8))
	_, hit, err = c.Get(other)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestPutRejectsNonOptimal(t *testing.T) {
	c, err := cache.Open("")
	require.NoError(t, err)
	defer c.Close()

	g := builder.MustBuild(nil, builder.Path(4))
	err = c.Put(g, domset.Result{Optimal: false})
	assert.ErrorIs(t, err, cache.ErrNotOptimal)
}

func TestPersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	g := builder.MustBuild(nil, builder.Grid(2, 3))
	res, err := domset.Solve(g)
	require.NoError(t, err)

	c, err := cache.Open(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(g, res))
	require.NoError(t, c.Close())

	c, err = cache.Open(dir)
	require.NoError(t, err)
	defer c.Close()
	got, hit, err := c.Get(g)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, res.Size, got.Size)
}

func TestKeyIsStable(t *testing.T) {
	a, err := cache.Key(builder.MustBuild(nil, builder.Star(5)))
	require.NoError(t, err)
	b, err := cache.Key(builder.MustBuild(nil, builder.Star(5)))
	require.NoError(t, err)
	c, err := cache.Key(builder.MustBuild(nil, builder.Star(6)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
