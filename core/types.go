package core

import "errors"

// Sentinel errors for graph construction and active-set misuse.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates a vertex index outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNotActive indicates Invalidate on a vertex that is already inactive.
	ErrNotActive = errors.New("core: vertex is not active")

	// ErrAlreadyActive indicates Revalidate on a vertex that is already active.
	ErrAlreadyActive = errors.New("core: vertex is already active")
)

// Vertex is a dense index into per-vertex arrays, in [0, Order()).
type Vertex int

// NoVertex is returned where a vertex is expected but none exists.
const NoVertex Vertex = -1
