package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/bfs"
	"github.com/katalvlaran/domset/core"
)

func build(t testing.TB, order int, edges ...[2]string) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	for b.Order() < order {
		_, err := b.AddVertex("iso" + string(rune('a'+b.Order())))
		require.NoError(t, err)
	}
	return b.Build()
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 0, [2]string{"A", "B"})
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, core.NoVertex)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	g.Invalidate(0)
	_, err = bfs.BFS(g, 0, bfs.WithActiveOnly())
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	g.Revalidate(0)
}

// TestCycleAndDepths covers a simple cycle and checks depths and parents.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A
	g := build(t, 0, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 3, 2}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 1}, res.Depth)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Labels(path))
}

func TestMaxDepthAndUnreached(t *testing.T) {
	// path A–B–C–D plus isolated vertex
	g := build(t, 5, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
	assert.False(t, res.Reached(4))
	assert.Equal(t, bfs.Unreached, res.Depth[4])

	_, err = res.PathTo(4)
	assert.Error(t, err)
}

func TestParallelEdgesVisitedOnce(t *testing.T) {
	g := build(t, 0, [2]string{"A", "B"}, [2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, res.Order)
}

func TestActiveOnly(t *testing.T) {
	// A–B–C: dropping B disconnects A from C
	g := build(t, 0, [2]string{"A", "B"}, [2]string{"B", "C"})
	g.Invalidate(1)
	defer g.Revalidate(1)

	res, err := bfs.BFS(g, 0, bfs.WithActiveOnly())
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0}, res.Order)

	comps, err := bfs.Components(g, bfs.WithActiveOnly())
	require.NoError(t, err)
	assert.Equal(t, [][]core.Vertex{{0}, {2}}, comps)

	comps, err = bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.Vertex{{0, 1, 2}}, comps)
}

func TestComponents(t *testing.T) {
	// {A,B} {C,D,E} {F}
	g := build(t, 0,
		[2]string{"A", "B"}, [2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"F", "F"})

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A", "B"}, g.Labels(comps[0]))
	assert.Equal(t, []string{"C", "D", "E"}, g.Labels(comps[1]))
	assert.Equal(t, []string{"F"}, g.Labels(comps[2]))

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestHookAndCancel(t *testing.T) {
	g := build(t, 0, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")

	var seen []core.Vertex
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v core.Vertex, depth int) error {
		seen = append(seen, v)
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.Vertex{0, 1}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Components(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
