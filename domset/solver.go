package domset

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/domset/core"
)

// checkMask sets how often (in nodes) the context and deadline are polled.
const checkMask = 1023

// engine holds the search state of one Solve call.
type engine struct {
	c    *Context
	opts Options
	log  logrus.FieldLogger

	// Time budget
	useDeadline bool
	deadline    time.Time

	nodes uint64
	stop  error

	// Candidate buffers, one per recursion depth, reused across siblings.
	frames [][]core.Vertex

	// Incumbent
	best     []core.Vertex
	bestSize int
	foundAny bool
}

// Solve returns a minimum dominating set of g.
//
// g's active set is used as scratch space during the search and is fully
// restored before Solve returns, on every path.
//
// Errors:
//   - ErrNilGraph, ErrGraphInUse, ErrBadTimeLimit, ErrUnknownBound on bad input.
//   - ErrTimeLimit or the context error when the search is cut short; the
//     incumbent (if any) is returned alongside with Optimal=false.
//   - Any error returned by OnNode or OnImprove, likewise with the incumbent.
func Solve(g *core.Graph, opts ...Option) (Result, error) {
	started := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	c, err := NewContext(g)
	if err != nil {
		return Result{}, err
	}

	e := &engine{c: c, opts: o, log: o.Logger}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = started.Add(o.TimeLimit)
	}
	e.run()

	res := Result{
		Solution: e.best,
		Labels:   g.Labels(e.best),
		Size:     len(e.best),
		Nodes:    e.nodes,
		Optimal:  e.stop == nil && e.foundAny,
		Elapsed:  time.Since(started),
	}
	e.log.WithFields(logrus.Fields{
		"size":    res.Size,
		"nodes":   res.Nodes,
		"optimal": res.Optimal,
		"elapsed": res.Elapsed,
	}).Debug("domset: search finished")

	return res, e.stop
}

// SolveContext is Solve with a cancellation context.
func SolveContext(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	return Solve(g, append(opts, WithContext(ctx))...)
}

// run drives preprocessing, seeding and the DFS, then unwinds the context.
func (e *engine) run() {
	c := e.c
	g := c.Graph()
	base := c.Mark()
	defer c.Rollback(base)

	// Nothing but v itself can dominate an isolated vertex.
	forced := 0
	for v := core.Vertex(0); int(v) < g.Order(); v++ {
		if g.Degree(v) == 0 {
			c.Select(v)
			forced++
		}
	}
	if forced > 0 {
		e.log.WithField("isolated", forced).Debug("domset: isolated vertices selected")
	}

	if e.opts.SeedGreedy && !c.IsDominated() {
		e.seedGreedy()
		if e.foundAny {
			e.log.WithField("size", e.bestSize).Debug("domset: greedy incumbent")
		}
	}
	if e.stop != nil {
		return
	}
	e.frames = make([][]core.Vertex, 0, g.Order()+1)
	e.branch(0)
}

// poll checks cancellation and the deadline; returns false once stopped.
func (e *engine) poll() bool {
	if e.stop != nil {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.stop = err
		return false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stop = ErrTimeLimit
		return false
	}
	return true
}

// branch is one search node.
func (e *engine) branch(depth int) {
	e.nodes++
	if e.nodes&checkMask == 1 && !e.poll() {
		return
	}
	c := e.c
	if e.opts.OnNode != nil {
		if err := e.opts.OnNode(depth, c.Undominated()); err != nil {
			e.stop = err
			return
		}
	}

	if c.IsDominated() {
		if !e.foundAny || c.SolutionSize() < e.bestSize {
			e.record()
		}
		return
	}

	if e.opts.BoundAlgo != NoBound {
		lb, ok := e.lowerBound()
		if !ok || (e.foundAny && lb >= e.bestSize) {
			return
		}
	}

	// Some member of N[pivot] must join S. The snapshot is taken before any
	// mutation because Select/Exclude reshuffle the pools.
	p := c.pivot()
	if len(e.frames) <= depth {
		e.frames = append(e.frames, nil)
	}
	cands := append(e.frames[depth][:0], p)
	for n := range c.g.ValidNeighbors(p) {
		cands = append(cands, n)
	}
	e.frames[depth] = cands

	for _, u := range cands {
		// parallel edges repeat neighbors; earlier siblings may have
		// excluded or retired u
		if c.IsExcluded(u) || !c.IsActive(u) {
			continue
		}
		mark := c.Mark()
		c.Select(u)
		e.branch(depth + 1)
		c.Rollback(mark)
		if e.opts.Paranoid {
			if err := c.CheckInvariants(); err != nil {
				panic(err)
			}
		}
		if e.stop != nil {
			return
		}
		c.Exclude(u)
	}
}

// record commits the current solution as the incumbent.
func (e *engine) record() {
	e.best = e.c.Solution()
	e.bestSize = len(e.best)
	e.foundAny = true
	e.log.WithFields(logrus.Fields{
		"size":  e.bestSize,
		"nodes": e.nodes,
	}).Debug("domset: improved solution")
	if e.opts.OnImprove != nil {
		if err := e.opts.OnImprove(e.bestSize, e.nodes); err != nil {
			e.stop = err
		}
	}
}
