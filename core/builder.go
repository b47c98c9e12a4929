package core

import "fmt"

// Builder accumulates labeled vertices and undirected edges and freezes
// them into a Graph.
//
// Labels map to indices in order of first appearance, so feeding the same
// edge list always yields the same numbering.
type Builder struct {
	labels []string
	index  map[string]Vertex
	adj    [][]Vertex
	edges  int
	loops  int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]Vertex)}
}

// AddVertex returns the index of label, assigning the next free index on
// first sight. Idempotent.
func (b *Builder) AddVertex(label string) (Vertex, error) {
	if label == "" {
		return NoVertex, ErrEmptyLabel
	}
	if v, ok := b.index[label]; ok {
		return v, nil
	}
	v := Vertex(len(b.labels))
	b.index[label] = v
	b.labels = append(b.labels, label)
	b.adj = append(b.adj, nil)

	return v, nil
}

// AddEdge adds the undirected edge {x,y}, creating missing vertices in
// argument order. Parallel edges are kept; a self-loop only registers
// the vertex.
func (b *Builder) AddEdge(x, y string) error {
	u, err := b.AddVertex(x)
	if err != nil {
		return fmt.Errorf("AddEdge(%q, %q): %w", x, y, err)
	}
	v, err := b.AddVertex(y)
	if err != nil {
		return fmt.Errorf("AddEdge(%q, %q): %w", x, y, err)
	}
	b.link(u, v)

	return nil
}

// AddEdgeIDs adds the undirected edge {u,v} between existing vertices.
func (b *Builder) AddEdgeIDs(u, v Vertex) error {
	n := Vertex(len(b.labels))
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdgeIDs(%d, %d): order=%d: %w", u, v, n, ErrVertexNotFound)
	}
	b.link(u, v)

	return nil
}

func (b *Builder) link(u, v Vertex) {
	if u == v {
		b.loops++
		return
	}
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)
	b.edges++
}

// Order returns the number of vertices added so far.
func (b *Builder) Order() int { return len(b.labels) }

// DroppedLoops returns how many self-loops were discarded.
func (b *Builder) DroppedLoops() int { return b.loops }

// Build freezes the accumulated structure into a Graph with every vertex
// active. Ownership of the internal slices moves to the Graph and the
// Builder is reset to empty.
func (b *Builder) Build() *Graph {
	g := newGraph(b.labels, b.index, b.adj, b.edges)
	*b = Builder{index: make(map[string]Vertex)}

	return g
}
