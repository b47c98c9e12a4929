package domset

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// CheckInvariants recomputes every derived quantity from the graph, the
// solution and the active set, and compares it with the incremental state.
// It returns an error wrapping ErrInvariant describing the first mismatch,
// or nil.
//
// Checked, for every vertex v:
//   - dom[v] = |N[v] ∩ S| (parallel edges with multiplicity)
//   - blackNbrs[v] / whiteNbrs[v] match the active neighbors by color
//   - v active ⇔ v in exactly one pool, and that pool matches Color(v)
//   - v selected ⇒ v inactive; v inactive and not selected ⇒ v White
//   - v excluded ⇒ v active and not selected
//
// and globally that the pools cover exactly the active set and the journal
// holds one Select record per solution member.
//
// Complexity: O(V + E).
func (c *Context) CheckInvariants() error {
	g := c.g
	n := g.Order()
	for v := core.Vertex(0); int(v) < n; v++ {
		var want int32
		if c.solution.Contains(v) {
			want = 1
		}
		var black, white int32
		for _, u := range g.Neighbors(v) {
			if c.solution.Contains(u) {
				want++
			}
			if !g.IsValid(u) {
				continue
			}
			if c.dom[u] > 0 {
				white++
			} else {
				black++
			}
		}
		if c.dom[v] != want {
			return invariantf(v, "dom=%d, recomputed %d", c.dom[v], want)
		}
		if c.blackNbrs[v] != black || c.whiteNbrs[v] != white {
			return invariantf(v, "counters black=%d white=%d, recomputed black=%d white=%d",
				c.blackNbrs[v], c.whiteNbrs[v], black, white)
		}

		active := g.IsValid(v)
		inWhite, inBlack := c.white.Contains(v), c.black.Contains(v)
		switch {
		case active && inWhite == inBlack:
			return invariantf(v, "active vertex in white=%t black=%t pools", inWhite, inBlack)
		case active && inWhite != (c.Color(v) == White):
			return invariantf(v, "pool disagrees with color %s", c.Color(v))
		case !active && (inWhite || inBlack):
			return invariantf(v, "inactive vertex still pooled")
		}

		selected := c.solution.Contains(v)
		if selected && active {
			return invariantf(v, "selected vertex is active")
		}
		if !active && !selected && c.dom[v] == 0 {
			return invariantf(v, "inactive vertex is neither selected nor dominated")
		}
		if c.excluded.Contains(int(v)) && (!active || selected) {
			return invariantf(v, "excluded vertex is inactive or selected")
		}
	}
	if pooled := c.white.Len() + c.black.Len(); pooled != g.Size() {
		return fmt.Errorf("%w: pools hold %d vertices, %d active", ErrInvariant, pooled, g.Size())
	}
	selects := 0
	for _, op := range c.journal {
		if op.Kind == OpSelect {
			selects++
		}
	}
	if selects != c.solution.Len() {
		return fmt.Errorf("%w: journal has %d selects, solution %d", ErrInvariant, selects, c.solution.Len())
	}

	return nil
}

func invariantf(v core.Vertex, format string, args ...any) error {
	return fmt.Errorf("%w: vertex %d: %s", ErrInvariant, v, fmt.Sprintf(format, args...))
}
