package domset

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/domset/bfs"
	"github.com/katalvlaran/domset/core"
)

// SolveComponents splits g into connected components and solves each one
// on its own induced subgraph. The union of per-component minimum
// dominating sets is a minimum dominating set of g.
//
// Solution lists the components in order of their lowest vertex. Nodes
// sums the per-component searches. TimeLimit covers the whole call.
// OnImprove receives sizes that include the components already solved.
//
// When a component search stops early, its incumbent is kept and every
// remaining component gets its greedy cover, so Solution still dominates
// g; Optimal is false and the stop error is returned.
func SolveComponents(g *core.Graph, opts ...Option) (Result, error) {
	started := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Size() != g.Order() {
		return Result{}, ErrGraphInUse
	}

	comps, err := bfs.Components(g, bfs.WithContext(o.Ctx))
	if err != nil {
		return Result{Elapsed: time.Since(started)}, err
	}
	if len(comps) <= 1 {
		return Solve(g, opts...)
	}
	o.Logger.WithField("components", len(comps)).Debug("domset: solving components")

	var (
		sol   []core.Vertex
		nodes uint64
		stop  error
	)
	for i, comp := range comps {
		if stop == nil {
			stop = o.Ctx.Err()
		}
		if stop == nil && o.TimeLimit > 0 && time.Since(started) >= o.TimeLimit {
			stop = ErrTimeLimit
		}

		// N[v] = {v} for an isolated vertex
		if len(comp) == 1 {
			sol = append(sol, comp[0])
			continue
		}

		sub := g.Induced(comp)
		var local []core.Vertex
		if stop == nil {
			var res Result
			res, stop = Solve(sub, componentOptions(o, i, len(sol), nodes, started)...)
			nodes += res.Nodes
			local = res.Solution
		}
		if local == nil {
			local = greedyCover(sub)
		}
		for _, v := range local {
			sol = append(sol, comp[v])
		}
	}

	res := Result{
		Solution: sol,
		Labels:   g.Labels(sol),
		Size:     len(sol),
		Nodes:    nodes,
		Optimal:  stop == nil,
		Elapsed:  time.Since(started),
	}
	o.Logger.WithFields(logrus.Fields{
		"size":    res.Size,
		"nodes":   res.Nodes,
		"optimal": res.Optimal,
		"elapsed": res.Elapsed,
	}).Debug("domset: components finished")

	return res, stop
}

// SolveComponentsContext is SolveComponents with a cancellation context.
func SolveComponentsContext(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	return SolveComponents(g, append(opts, WithContext(ctx))...)
}

// componentOptions derives the options of the i-th component search from
// the caller's resolved options.
func componentOptions(o Options, i, solved int, nodes uint64, started time.Time) []Option {
	sub := []Option{
		WithContext(o.Ctx),
		WithBound(o.BoundAlgo),
		WithGreedySeed(o.SeedGreedy),
		WithLogger(o.Logger.WithField("component", i)),
		WithOnNode(o.OnNode),
	}
	if o.Paranoid {
		sub = append(sub, WithParanoid())
	}
	if o.TimeLimit > 0 {
		left := o.TimeLimit - time.Since(started)
		if left <= 0 {
			left = time.Nanosecond
		}
		sub = append(sub, WithTimeLimit(left))
	}
	if next := o.OnImprove; next != nil {
		sub = append(sub, WithOnImprove(func(size int, n uint64) error {
			return next(solved+size, nodes+n)
		}))
	}

	return sub
}

// greedyCover returns the greedy dominating set of a graph no search has
// touched.
func greedyCover(g *core.Graph) []core.Vertex {
	c, err := NewContext(g)
	if err != nil {
		return nil
	}
	e := &engine{c: c, opts: DefaultOptions(), log: discardLogger()}
	e.seedGreedy()

	return e.best
}
