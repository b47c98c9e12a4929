package domset

import (
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/fastset"
)

// Context is the incremental search state over one graph.
//
// It owns the graph's active set for its lifetime: Select and Exclude
// invalidate vertices, Rollback revalidates them. Not safe for concurrent use.
type Context struct {
	g *core.Graph

	journal  []Operation
	solution *fastset.DenseSet[core.Vertex]
	white    *fastset.DenseSet[core.Vertex]
	black    *fastset.DenseSet[core.Vertex]
	excluded *fastset.EpochSet

	dom       []int32
	blackNbrs []int32
	whiteNbrs []int32
}

// NewContext wraps g in a fresh context: empty solution, every vertex
// Black and active, blackNbrs[v] = deg(v).
//
// Returns ErrNilGraph for a nil graph and ErrGraphInUse if some vertex
// of g is already inactive.
// Complexity: O(V + E).
func NewContext(g *core.Graph) (*Context, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if g.Size() != n {
		return nil, ErrGraphInUse
	}
	c := &Context{
		g:         g,
		journal:   make([]Operation, 0, 2*n),
		solution:  fastset.NewDenseSet[core.Vertex](n),
		white:     fastset.NewDenseSet[core.Vertex](n),
		black:     fastset.NewDenseSet[core.Vertex](n),
		excluded:  fastset.NewEpochSet(n),
		dom:       make([]int32, n),
		blackNbrs: make([]int32, n),
		whiteNbrs: make([]int32, n),
	}
	for v := core.Vertex(0); int(v) < n; v++ {
		c.black.InsertUnchecked(v)
		c.blackNbrs[v] = int32(g.Degree(v))
	}

	return c, nil
}

// Graph returns the graph under search.
func (c *Context) Graph() *core.Graph { return c.g }

// Color returns White if v is dominated, Black otherwise.
func (c *Context) Color(v core.Vertex) Color {
	if c.dom[v] > 0 {
		return White
	}
	return Black
}

// DomAmount returns the number of members of N[v] in the solution.
func (c *Context) DomAmount(v core.Vertex) int { return int(c.dom[v]) }

// BlackNeighbors returns the number of active Black neighbors of v.
func (c *Context) BlackNeighbors(v core.Vertex) int { return int(c.blackNbrs[v]) }

// WhiteNeighbors returns the number of active White neighbors of v.
func (c *Context) WhiteNeighbors(v core.Vertex) int { return int(c.whiteNbrs[v]) }

// IsSelected reports whether v is in the solution.
func (c *Context) IsSelected(v core.Vertex) bool { return c.solution.Contains(v) }

// IsExcluded reports whether v is a Black vertex barred from the solution.
// White excluded vertices are inactive instead and report false.
func (c *Context) IsExcluded(v core.Vertex) bool { return c.excluded.Contains(int(v)) }

// IsActive reports whether v is still in play.
func (c *Context) IsActive(v core.Vertex) bool { return c.g.IsValid(v) }

// IsDominated reports whether every active vertex is White.
func (c *Context) IsDominated() bool { return c.black.IsEmpty() }

// Undominated returns the number of active Black vertices.
func (c *Context) Undominated() int { return c.black.Len() }

// SolutionSize returns |S|.
func (c *Context) SolutionSize() int { return c.solution.Len() }

// Solution returns a copy of S in selection order.
func (c *Context) Solution() []core.Vertex {
	return append([]core.Vertex(nil), c.solution.Values()...)
}

// Journal returns a copy of the pending operations, oldest first.
func (c *Context) Journal() []Operation {
	return append([]Operation(nil), c.journal...)
}

// Mark returns the current journal depth for a later Rollback.
func (c *Context) Mark() int { return len(c.journal) }

// Select adds v to the solution.
//
// v leaves its color pool and the active set; every neighbor's domination
// count grows by one and neighbors that become White move pools, which in
// turn updates the counters of their own neighbors.
//
// Panics with *InvariantError if v is selected, excluded or inactive.
func (c *Context) Select(v core.Vertex) {
	switch {
	case c.solution.Contains(v):
		c.fail("Select", v, "already selected")
	case c.excluded.Contains(int(v)):
		c.fail("Select", v, "vertex is excluded")
	case !c.g.IsValid(v):
		c.fail("Select", v, "vertex is inactive")
	}
	color := c.Color(v)
	c.retire(v, color)
	c.solution.InsertUnchecked(v)
	c.dom[v]++
	for _, n := range c.g.Neighbors(v) {
		c.dominate("Select", n)
	}
	c.journal = append(c.journal, Operation{V: v, Color: color, Kind: OpSelect})
}

// Exclude bars v from the solution for the rest of the branch.
//
// A White v is already dominated and has no further use, so it is
// retired from the active set. A Black v stays active (it still needs
// a dominator) and is only recorded in the excluded set.
//
// Panics with *InvariantError if v is selected, excluded or inactive.
func (c *Context) Exclude(v core.Vertex) {
	switch {
	case c.solution.Contains(v):
		c.fail("Exclude", v, "vertex is selected")
	case c.excluded.Contains(int(v)):
		c.fail("Exclude", v, "already excluded")
	case !c.g.IsValid(v):
		c.fail("Exclude", v, "vertex is inactive")
	}
	color := c.Color(v)
	if color == White {
		c.retire(v, White)
	} else {
		c.excluded.Insert(int(v))
	}
	c.journal = append(c.journal, Operation{V: v, Color: color, Kind: OpExclude})
}

// Rollback undoes journal records until Mark() == mark.
//
// Panics with *InvariantError if mark is negative or beyond the journal.
func (c *Context) Rollback(mark int) {
	if mark < 0 || mark > len(c.journal) {
		c.fail("Rollback", core.NoVertex, "mark outside journal")
	}
	for len(c.journal) > mark {
		last := len(c.journal) - 1
		op := c.journal[last]
		c.journal = c.journal[:last]
		switch op.Kind {
		case OpSelect:
			c.undoSelect(op.V, op.Color)
		case OpExclude:
			c.undoExclude(op.V, op.Color)
		default:
			c.fail("Rollback", op.V, "cannot undo "+op.Kind.String())
		}
	}
}

func (c *Context) undoSelect(v core.Vertex, color Color) {
	for _, n := range c.g.Neighbors(v) {
		c.undominate(n)
	}
	c.dom[v]--
	if c.Color(v) != color {
		c.fail("Rollback", v, "restored color "+color.String()+" disagrees with dom")
	}
	c.solution.Remove(v)
	c.restore(v, color)
}

func (c *Context) undoExclude(v core.Vertex, color Color) {
	if color == White {
		if c.dom[v] == 0 {
			c.fail("Rollback", v, "excluded white vertex lost its dominator")
		}
		c.restore(v, White)
		return
	}
	if !c.excluded.Contains(int(v)) {
		c.fail("Rollback", v, "black vertex missing from excluded set")
	}
	c.excluded.Remove(int(v))
}

// retire removes v from its pool and the active set and withdraws v from
// its neighbors' counters.
func (c *Context) retire(v core.Vertex, color Color) {
	c.g.Invalidate(v)
	nbrs := c.g.Neighbors(v)
	if color == White {
		c.white.Remove(v)
		for _, n := range nbrs {
			c.whiteNbrs[n]--
		}
		return
	}
	c.black.Remove(v)
	for _, n := range nbrs {
		c.blackNbrs[n]--
	}
}

// restore is the inverse of retire.
func (c *Context) restore(v core.Vertex, color Color) {
	c.g.Revalidate(v)
	nbrs := c.g.Neighbors(v)
	if color == White {
		c.white.InsertUnchecked(v)
		for _, n := range nbrs {
			c.whiteNbrs[n]++
		}
		return
	}
	c.black.InsertUnchecked(v)
	for _, n := range nbrs {
		c.blackNbrs[n]++
	}
}

// dominate raises dom[n]; on 0→1 n turns White.
func (c *Context) dominate(op string, n core.Vertex) {
	c.dom[n]++
	if c.dom[n] != 1 {
		return
	}
	// only active vertices can be Black
	if !c.g.IsValid(n) {
		c.fail(op, n, "black vertex outside the active set")
	}
	c.black.Remove(n)
	c.white.InsertUnchecked(n)
	for _, m := range c.g.Neighbors(n) {
		c.blackNbrs[m]--
		c.whiteNbrs[m]++
	}
}

// undominate lowers dom[n]; on 1→0 n turns Black again.
func (c *Context) undominate(n core.Vertex) {
	if c.dom[n] == 0 {
		c.fail("Rollback", n, "domination count below zero")
	}
	c.dom[n]--
	if c.dom[n] != 0 {
		return
	}
	if !c.g.IsValid(n) {
		c.fail("Rollback", n, "undominated vertex is inactive")
	}
	c.white.Remove(n)
	c.black.InsertUnchecked(n)
	for _, m := range c.g.Neighbors(n) {
		c.whiteNbrs[m]--
		c.blackNbrs[m]++
	}
}

func (c *Context) fail(op string, v core.Vertex, reason string) {
	panic(&InvariantError{Op: op, V: v, Reason: reason})
}
