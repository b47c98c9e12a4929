// Package core provides the graph model consumed by the dominating-set
// engine: dense vertex indices, immutable adjacency lists and a dynamic
// "active" vertex set.
//
// The Graph G = (V,E) is built once through a Builder and never changes
// shape afterwards:
//
//   - Vertices are dense indices 0..N-1 assigned on first sight of a label,
//     in order of appearance. Indices are never reused or renumbered.
//   - Adjacency is an ordered neighbor slice per vertex, fixed at Build time.
//     Parallel edges are kept (each occurrence appears in both lists);
//     self-loops are dropped because a vertex already belongs to its own
//     closed neighborhood.
//   - The active set records which vertices may still serve as search pivots
//     or branch candidates. Invalidate/Revalidate toggle membership without
//     touching adjacency and must be called in LIFO-nested pairs.
//
// Core Methods:
//
//	// Construction
//	NewBuilder() *Builder
//	(*Builder).AddVertex(label string) (Vertex, error)   // O(1) amortized, idempotent
//	(*Builder).AddEdge(a, b string) error                 // O(1) amortized
//	(*Builder).AddEdgeIDs(u, v Vertex) error              // O(1) amortized
//	(*Builder).Build() *Graph                             // O(V)
//
//	// Static queries
//	Order() int, EdgeCount() int, Degree(v) int
//	Neighbors(v) []Vertex                                 // O(1), read-only view
//	Label(v) string, Lookup(label) (Vertex, bool)
//
//	// Active set
//	Size() int, IsValid(v) bool                           // O(1)
//	Invalidate(v), Revalidate(v)                          // O(1)
//	ValidNeighbors(v) iter.Seq[Vertex]                    // O(deg v)
//	Active() iter.Seq[Vertex]                             // O(Size)
//
// Errors:
//
//	ErrEmptyLabel     – zero-length vertex label
//	ErrVertexNotFound – vertex index outside [0, Order())
//	ErrNotActive      – Invalidate of an inactive vertex (panics)
//	ErrAlreadyActive  – Revalidate of an active vertex (panics)
//
// Unlike the rest of the API, Invalidate/Revalidate panic on misuse: an
// unbalanced toggle means the caller's undo protocol is broken and the
// search state can no longer be trusted.
//
// Graph is not safe for concurrent use; it is owned by a single search.
package core
