// Package domset implements an exact Minimum Dominating Set solver.
//
// A dominating set S of an undirected graph is a vertex subset such that
// every vertex is in S or adjacent to a member of S. Solve returns a
// smallest such set using depth-first branch-and-bound.
//
// The engine is built around Context, an incremental state tracker that
// lets the search try a vertex, recurse and undo the trial in O(degree)
// time instead of copying graph state:
//
//   - dom[v]        number of vertices of N[v] (v and its neighbors) in S.
//     v is White (dominated) iff dom[v] > 0, Black otherwise.
//   - black/white   pools holding the active vertices by color.
//   - blackNbrs[v]  active Black neighbors of v.
//   - whiteNbrs[v]  active White neighbors of v.
//   - excluded      Black vertices barred from S in the current branch.
//   - journal       inverse-operation records popped by Rollback.
//
// Protocol:
//
//	mark := c.Mark()
//	c.Select(u)       // u joins S, leaves the active pool
//	... recurse ...
//	c.Rollback(mark)  // exact inverse, O(Σ deg) of the undone operations
//	c.Exclude(u)      // u may not join S in the remaining siblings
//
// Select and Exclude panic with *InvariantError on precondition
// violations. These indicate a broken caller, never bad input.
//
// Search (Solve):
//
//  1. Isolated vertices are selected up front: nothing else can dominate them.
//  2. Optional greedy seed: pick max-coverage vertices until dominated, record
//     the incumbent, roll back. This only tightens the initial bound.
//  3. DFS: if dominated, record the solution. Otherwise pick the Black pivot
//     of minimum active degree and branch over its closed neighborhood (the
//     pivot itself, then its active neighbors), skipping excluded vertices.
//     After each branch the candidate is excluded, so sibling subtrees are
//     disjoint and together exhaustive.
//  4. Pruning by BoundAlgo: NoBound, SimpleBound (|S|+1 ≥ best) or
//     CoverBound (|S| + ⌈black / maxCoverage⌉ ≥ best).
//
// SolveComponents splits the graph with bfs.Components, solves every
// component on its induced subgraph and joins the results. Disconnected
// inputs search several shallow trees instead of one deep one.
//
// Options mirror the rest of the library: a context and soft time limit
// checked every 1024 nodes, OnNode/OnImprove hooks whose errors abort the
// search, and a logrus logger for progress.
//
// Complexity:
//   - Select/Exclude/undo: O(Σ_{n∈N(v)} deg(n)) worst case due to the one-hop
//     counter cascade; O(deg v) when no neighbor changes color.
//   - Per search node: O(|black|) pivot scan + O(active) for CoverBound.
//   - Worst case exponential in |V| (exact search).
//
// A Context and a Graph under search are owned by one goroutine; Solve
// mutates the graph's active set while running and restores it before
// returning.
package domset
