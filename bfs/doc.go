// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start (Unreached if not visited)
//   - Parent: per-vertex predecessor in the BFS tree
//   - OnVisit hook may abort the walk with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithActiveOnly walks only the vertices still active in the graph.
//   - Components splits the graph into connected components.
//
// Why
//
//	A dominating set of a disconnected graph is the union of dominating
//	sets of its components, so the solver searches each component on its
//	own (domset.SolveComponents). The branching factor stays the same but
//	the depth of each search tree drops to the component's domination number.
//
// Determinism
//
//	Neighbors are enqueued in core adjacency order, which follows edge
//	insertion order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth and Parent slices.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	comps, err := bfs.Components(g, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range (or inactive
//     with WithActiveOnly).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation; wrapped user errors from OnVisit.
package bfs
