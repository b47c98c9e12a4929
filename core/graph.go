package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/domset/fastset"
)

// Graph is an undirected graph with fixed adjacency and a mutable active set.
type Graph struct {
	adj    [][]Vertex
	labels []string
	index  map[string]Vertex
	edges  int

	active *fastset.DenseSet[Vertex]
}

func newGraph(labels []string, index map[string]Vertex, adj [][]Vertex, edges int) *Graph {
	n := len(labels)
	g := &Graph{
		adj:    adj,
		labels: labels,
		index:  index,
		edges:  edges,
		active: fastset.NewDenseSet[Vertex](n),
	}
	for v := 0; v < n; v++ {
		g.active.InsertUnchecked(Vertex(v))
	}

	return g
}

// Order returns |V|, independent of activity.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns |E| counting parallel edges, excluding dropped loops.
func (g *Graph) EdgeCount() int { return g.edges }

// Size returns the number of currently active vertices.
func (g *Graph) Size() int { return g.active.Len() }

// Has reports whether v is a vertex index of g.
func (g *Graph) Has(v Vertex) bool { return v >= 0 && int(v) < len(g.adj) }

// Degree returns the static degree of v.
func (g *Graph) Degree(v Vertex) int { return len(g.adj[v]) }

// Neighbors returns the fixed adjacency of v. The slice is shared with
// the graph and must not be modified.
func (g *Graph) Neighbors(v Vertex) []Vertex { return g.adj[v] }

// Label returns the input label of v.
func (g *Graph) Label(v Vertex) string { return g.labels[v] }

// Lookup returns the vertex carrying label.
func (g *Graph) Lookup(label string) (Vertex, bool) {
	v, ok := g.index[label]
	return v, ok
}

// IsValid reports whether v is active.
func (g *Graph) IsValid(v Vertex) bool { return g.active.Contains(v) }

// Invalidate removes v from the active set. Panics if v is inactive.
func (g *Graph) Invalidate(v Vertex) {
	if !g.active.Remove(v) {
		panic(fmt.Errorf("core: Invalidate(%d): %w", v, ErrNotActive))
	}
}

// Revalidate returns v to the active set. Panics if v is already active.
func (g *Graph) Revalidate(v Vertex) {
	if !g.active.Insert(v) {
		panic(fmt.Errorf("core: Revalidate(%d): %w", v, ErrAlreadyActive))
	}
}

// ValidNeighbors yields the active neighbors of v in adjacency order.
// Parallel edges yield the neighbor once per edge.
func (g *Graph) ValidNeighbors(v Vertex) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, n := range g.adj[v] {
			if g.active.Contains(n) && !yield(n) {
				return
			}
		}
	}
}

// Active yields the active vertices in unspecified order. The active set
// must not change during the range loop.
func (g *Graph) Active() iter.Seq[Vertex] { return g.active.All() }

// Labels returns the labels of vs in the same order.
func (g *Graph) Labels(vs []Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = g.labels[v]
	}

	return out
}

// Induced returns the subgraph induced by vs as a fresh Graph. Vertex i of
// the result is vs[i] with the same label; parallel edges are preserved.
// vs must not contain duplicates.
// Complexity: O(|vs| + Σ deg(v)).
func (g *Graph) Induced(vs []Vertex) *Graph {
	b := NewBuilder()
	local := make(map[Vertex]Vertex, len(vs))
	for _, v := range vs {
		lv, _ := b.AddVertex(g.labels[v]) // labels are non-empty and unique
		local[v] = lv
	}
	for _, v := range vs {
		for _, u := range g.adj[v] {
			if lu, ok := local[u]; ok && v < u {
				b.link(local[v], lu)
			}
		}
	}

	return b.Build()
}
