package domset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/core"
)

// graphOf builds a graph from label pairs; extra labels become isolated vertices.
func graphOf(t testing.TB, edges [][2]string, extra ...string) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	for _, l := range extra {
		_, err := b.AddVertex(l)
		require.NoError(t, err)
	}
	return b.Build()
}

// square is C4: a-b-c-d-a.
func square(t testing.TB) *core.Graph {
	return graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}})
}

// snapshot is every observable field of a Context in a comparable shape.
type snapshot struct {
	Dom       []int32
	BlackNbrs []int32
	WhiteNbrs []int32
	White     []core.Vertex
	Black     []core.Vertex
	Solution  []core.Vertex
	Excluded  []core.Vertex
	Active    []core.Vertex
	Journal   []Operation
}

func sorted(vs []core.Vertex) []core.Vertex {
	out := slices.Clone(vs)
	slices.Sort(out)
	return out
}

func takeSnapshot(c *Context) snapshot {
	var excluded, active []core.Vertex
	for v := core.Vertex(0); int(v) < c.g.Order(); v++ {
		if c.IsExcluded(v) {
			excluded = append(excluded, v)
		}
		if c.IsActive(v) {
			active = append(active, v)
		}
	}
	return snapshot{
		Dom:       slices.Clone(c.dom),
		BlackNbrs: slices.Clone(c.blackNbrs),
		WhiteNbrs: slices.Clone(c.whiteNbrs),
		White:     sorted(c.white.Values()),
		Black:     sorted(c.black.Values()),
		Solution:  c.Solution(),
		Excluded:  excluded,
		Active:    active,
		Journal:   c.Journal(),
	}
}

// isDominating reports whether every vertex of g is in sol or adjacent to it.
func isDominating(g *core.Graph, sol []core.Vertex) bool {
	in := make([]bool, g.Order())
	for _, v := range sol {
		in[v] = true
	}
	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if in[v] {
			continue
		}
		ok := false
		for _, n := range g.Neighbors(v) {
			if in[n] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// requireInvariantPanic asserts fn panics with *InvariantError for op.
func requireInvariantPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected panic", op)
		ie, ok := r.(*InvariantError)
		require.True(t, ok, "%s: panic value %T (%v) is not *InvariantError", op, r, r)
		require.Equal(t, op, ie.Op)
	}()
	fn()
}
