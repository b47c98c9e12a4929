// Package satcheck certifies dominating sets with a SAT solver.
//
// It is an independent oracle for the branch-and-bound solver: the problem
// is compiled to a circuit with one variable per vertex and one covering
// disjunction per closed neighborhood N[v]; a sorting-network cardinality
// constraint bounds the number of true variables. The minimum is found by
// linear search on that bound.
//
// The encoding grows as O(V log² V) for the cardinality network plus O(V+E)
// for the covers, so it is meant for test-sized graphs and `solve --verify`.
package satcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/domset/core"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("satcheck: graph is nil")

	// ErrNotDominating is returned by Verify when some vertex is uncovered.
	ErrNotDominating = errors.New("satcheck: set is not dominating")

	// ErrNotMinimum is returned by Verify when a smaller dominating set exists.
	ErrNotMinimum = errors.New("satcheck: smaller dominating set exists")

	// ErrIncomplete is returned when ctx ends before the solver answers.
	ErrIncomplete = errors.New("satcheck: cancelled before a result was available")
)

// problem is the compiled circuit of one graph.
type problem struct {
	c      *logic.C
	x      []z.Lit // x[v] true ⇔ v selected
	covers []z.Lit // covers[v] = OR over N[v]
	card   *logic.CardSort
}

func compile(g *core.Graph) *problem {
	n := g.Order()
	p := &problem{
		c:      logic.NewC(),
		x:      make([]z.Lit, n),
		covers: make([]z.Lit, n),
	}
	for v := range p.x {
		p.x[v] = p.c.Lit()
	}
	for v := core.Vertex(0); int(v) < n; v++ {
		nbrs := g.Neighbors(v)
		ms := make([]z.Lit, 0, len(nbrs)+1)
		ms = append(ms, p.x[v])
		for _, u := range nbrs {
			ms = append(ms, p.x[u])
		}
		p.covers[v] = p.c.Ors(ms...)
	}
	p.card = p.c.CardSort(p.x)

	return p
}

// solve asks whether a dominating set of size ≤ bound exists; a negative
// bound drops the cardinality constraint.
func (p *problem) solve(ctx context.Context, s *gini.Gini, bound int) int {
	if bound >= 0 {
		s.Assume(p.card.Leq(bound))
	}
	s.Assume(p.covers...)

	return waitForSolution(ctx, s.GoSolve())
}

func waitForSolution(ctx context.Context, gs inter.Solve) int {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()

	for {
		if result, ok := gs.Test(); ok {
			return result
		}
		select {
		case <-ctx.Done():
			return gs.Stop()
		case <-t.C:
		}
	}
}

func (p *problem) model(s *gini.Gini) []core.Vertex {
	var out []core.Vertex
	for v, m := range p.x {
		if s.Value(m) {
			out = append(out, core.Vertex(v))
		}
	}
	return out
}

// MinimumDominatingSet returns a minimum dominating set of g, in ascending
// vertex order.
//
// Errors: ErrNilGraph, or ErrIncomplete joined with ctx.Err() on cancellation.
func MinimumDominatingSet(ctx context.Context, g *core.Graph) ([]core.Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, nil
	}
	p := compile(g)
	s := gini.New()
	p.c.ToCnf(s)

	for w := 0; w <= p.card.N(); w++ {
		switch p.solve(ctx, s, w) {
		case satisfiable:
			return p.model(s), nil
		case unknown:
			return nil, fmt.Errorf("%w: %w", ErrIncomplete, ctx.Err())
		}
	}

	// Selecting every vertex always dominates, so w = N is satisfiable.
	return nil, fmt.Errorf("satcheck: no dominating set within %d vertices", p.card.N())
}

// Dominates reports whether every vertex of g is in set or adjacent to it.
// Complexity: O(V + E).
func Dominates(g *core.Graph, set []core.Vertex) bool {
	in := make([]bool, g.Order())
	for _, v := range set {
		in[v] = true
	}
	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if in[v] {
			continue
		}
		covered := false
		for _, u := range g.Neighbors(v) {
			if in[u] {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}

// Verify checks that set dominates g and that no dominating set of size
// len(set)-1 exists.
//
// Errors: ErrNotDominating, ErrNotMinimum, ErrIncomplete, ErrNilGraph.
func Verify(ctx context.Context, g *core.Graph, set []core.Vertex) error {
	if g == nil {
		return ErrNilGraph
	}
	if !Dominates(g, set) {
		return ErrNotDominating
	}
	if len(set) == 0 {
		return nil
	}
	p := compile(g)
	s := gini.New()
	p.c.ToCnf(s)

	switch p.solve(ctx, s, len(set)-1) {
	case satisfiable:
		return fmt.Errorf("%w: size %d beats %d", ErrNotMinimum, len(p.model(s)), len(set))
	case unsatisfiable:
		return nil
	}

	return fmt.Errorf("%w: %w", ErrIncomplete, ctx.Err())
}
