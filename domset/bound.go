package domset

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/domset/core"
)

// coverage returns how many Black vertices selecting u would newly
// dominate: its active Black neighbors plus u itself when u is Black.
func (c *Context) coverage(u core.Vertex) int {
	cov := int(c.blackNbrs[u])
	if c.dom[u] == 0 {
		cov++
	}
	return cov
}

// bestCover scans the selectable vertices (active, not excluded) and
// returns the one with maximum coverage, lowest index on ties.
// Returns (NoVertex, 0) when nothing selectable dominates a Black vertex.
// Complexity: O(active).
func (c *Context) bestCover() (core.Vertex, int) {
	best, bestCov := core.NoVertex, 0
	scan := func(pool []core.Vertex) {
		for _, u := range pool {
			if c.excluded.Contains(int(u)) {
				continue
			}
			cov := c.coverage(u)
			if cov > bestCov || (cov == bestCov && cov > 0 && u < best) {
				best, bestCov = u, cov
			}
		}
	}
	scan(c.black.Values())
	scan(c.white.Values())

	return best, bestCov
}

// pivot returns the Black vertex of minimum active degree, lowest index on
// ties. A low-degree pivot gives the fewest branches.
// The black pool must be non-empty.
func (c *Context) pivot() core.Vertex {
	best, bestDeg := core.NoVertex, int32(-1)
	for _, v := range c.black.Values() {
		d := c.blackNbrs[v] + c.whiteNbrs[v]
		if bestDeg < 0 || d < bestDeg || (d == bestDeg && v < best) {
			best, bestDeg = v, d
		}
	}
	return best
}

// lowerBound returns a lower bound on the final solution size reachable
// from the current state, and false if the state is a dead end (a Black
// vertex is left that no selectable vertex can dominate).
//
// CoverBound: every further selection dominates at most maxCoverage Black
// vertices, so at least ⌈black / maxCoverage⌉ more are needed.
func (e *engine) lowerBound() (int, bool) {
	c := e.c
	size := c.SolutionSize()
	switch e.opts.BoundAlgo {
	case SimpleBound:
		return size + 1, true
	case CoverBound:
		_, maxCov := c.bestCover()
		if maxCov == 0 {
			return 0, false
		}
		black := c.Undominated()
		return size + (black+maxCov-1)/maxCov, true
	}
	return size, true
}

// coverKey is a heap entry of seedGreedy. cov is an upper bound on the
// current coverage of v.
type coverKey struct {
	v   core.Vertex
	cov int
}

// byCoverage orders coverKeys by coverage descending, then index ascending.
func byCoverage(a, b interface{}) int {
	x, y := a.(coverKey), b.(coverKey)
	switch {
	case x.cov > y.cov:
		return -1
	case x.cov < y.cov:
		return 1
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// seedGreedy records the classic greedy dominating set as the first
// incumbent and rolls the context back. Correctness never depends on it.
//
// Coverage only shrinks as vertices are selected, so a popped entry whose
// recomputed coverage still matches its key is the true maximum (lowest
// index on ties), the same pick bestCover would make. Stale entries are
// pushed back with their current coverage.
func (e *engine) seedGreedy() {
	c := e.c
	mark := c.Mark()

	h := binaryheap.NewWith(byCoverage)
	for _, pool := range [][]core.Vertex{c.black.Values(), c.white.Values()} {
		for _, u := range pool {
			if c.excluded.Contains(int(u)) {
				continue
			}
			if cov := c.coverage(u); cov > 0 {
				h.Push(coverKey{v: u, cov: cov})
			}
		}
	}

	for !c.IsDominated() {
		top, ok := h.Pop()
		if !ok {
			break
		}
		k := top.(coverKey)
		if !c.IsActive(k.v) {
			continue
		}
		cov := c.coverage(k.v)
		switch {
		case cov == 0:
		case cov < k.cov:
			h.Push(coverKey{v: k.v, cov: cov})
		default:
			c.Select(k.v)
		}
	}
	if c.IsDominated() {
		e.record()
	}
	c.Rollback(mark)
}
