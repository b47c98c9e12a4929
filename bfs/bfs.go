// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting and an active-only mode.
// Components splits a graph into its connected components.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []core.Vertex
	res   *BFSResult
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]core.Vertex, 0, n),
		res: &BFSResult{
			Order:  make([]core.Vertex, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.Vertex, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = core.NoVertex
	}

	return w
}

func resolve(g *core.Graph, opts []Option) (BFSOptions, error) {
	if g == nil {
		return BFSOptions{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Neighbors are enqueued in adjacency order, so the visit sequence is
// reproducible. Parallel edges are followed once.
func BFS(g *core.Graph, start core.Vertex, opts ...Option) (*BFSResult, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.Has(start) || (o.ActiveOnly && !g.IsValid(start)) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// Components returns the connected components of g, each in BFS order
// from its lowest-indexed vertex, ordered by that vertex.
// With WithActiveOnly, inactive vertices belong to no component.
// MaxDepth and OnVisit apply to every per-component walk.
func Components(g *core.Graph, opts ...Option) ([][]core.Vertex, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	var comps [][]core.Vertex
	w := newWalker(g, o)
	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if w.res.Depth[v] != Unreached || (o.ActiveOnly && !g.IsValid(v)) {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(v, 0, core.NoVertex)
		if err = w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order[from:len(w.res.Order):len(w.res.Order)])
	}

	return comps, nil
}

// enqueue marks v reached at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(v core.Vertex, d int, parent core.Vertex) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			w.queue = w.queue[:0]
			return w.ctx.Err()
		default:
		}

		v := w.queue[head]
		if err := w.visit(v); err != nil {
			w.queue = w.queue[:0]
			return err
		}
		w.enqueueNeighbors(v)
	}
	w.queue = w.queue[:0]

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v core.Vertex) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors applies the activity filter and MaxDepth, and enqueues
// each unseen neighbor.
func (w *walker) enqueueNeighbors(v core.Vertex) {
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(v) {
		if w.opts.ActiveOnly && !w.graph.IsValid(nbr) {
			continue
		}
		// first time seen?
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, v)
		}
	}
}
