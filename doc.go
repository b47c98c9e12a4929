// Package domset is an exact Minimum Dominating Set solver: given an
// undirected graph, find the smallest vertex set S such that every vertex
// is in S or adjacent to a member of S.
//
// 🚀 What is in the box?
//
//	• Incremental search state: select / exclude / rollback in O(degree),
//	  with per-vertex domination counters and a journal of every change
//	• Branch and bound: closed-neighborhood branching, greedy incumbent,
//	  coverage lower bound, context cancellation and time limits
//	• Component splitting: disconnected inputs are solved piecewise
//	• Independent certification: SAT encoding with cardinality constraints
//	• Result cache, fixtures, an edge-list loader and a cobra CLI
//
// Under the hood, everything is organized into small packages:
//
//	fastset/          EpochSet (O(1) clear) and DenseSet (swap-remove, iterable)
//	core/             immutable adjacency + active set, Builder (label → index)
//	domset/           solver Context, Solve, SolveComponents, bounds
//	bfs/              breadth-first search and connected components
//	builder/          deterministic fixture graphs (cycles, grids, random, ...)
//	loader/           edge-list text format reader/writer
//	satcheck/         gini-based optimality oracle
//	metrics/          prometheus collectors fed by solver hooks
//	cache/            badger store of proven-optimal results
//	internal/config/  YAML run configuration
//	cmd/domset/       `domset solve` and `domset generate`
//
// Quick start:
//
//	g, _, err := loader.LoadFile("graph.txt")
//	res, err := domset.Solve(g, domset.WithTimeLimit(time.Minute))
//	fmt.Println(res.Size, res.Optimal, res.Labels)
package domset
