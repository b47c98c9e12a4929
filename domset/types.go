package domset

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/domset/core"
)

// Sentinel errors returned by Solve and NewContext.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("domset: graph is nil")

	// ErrGraphInUse is returned when the graph has inactive vertices, i.e.
	// another search is mutating it or a previous one did not unwind.
	ErrGraphInUse = errors.New("domset: graph has inactive vertices")

	// ErrTimeLimit is returned when Options.TimeLimit expires before the
	// search space is exhausted. The incumbent, if any, is still returned.
	ErrTimeLimit = errors.New("domset: time limit exceeded")

	// ErrBadTimeLimit indicates a negative Options.TimeLimit.
	ErrBadTimeLimit = errors.New("domset: negative time limit")

	// ErrUnknownBound indicates an unsupported Options.BoundAlgo.
	ErrUnknownBound = errors.New("domset: unknown bound algorithm")

	// ErrInvariant classifies CheckInvariants failures.
	ErrInvariant = errors.New("domset: invariant violated")
)

// Color is the domination state of a vertex, derived from dom[v].
type Color uint8

const (
	// Black vertices are not yet dominated (dom == 0).
	Black Color = iota
	// White vertices are dominated (dom > 0).
	White
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// OpKind tags a journal record.
type OpKind uint8

const (
	// OpSelect records a Select.
	OpSelect OpKind = iota
	// OpExclude records an Exclude.
	OpExclude
	// OpIgnore is reserved for a future "ignore vertex" operation. It is
	// never produced and Rollback panics if it meets one.
	OpIgnore
)

func (k OpKind) String() string {
	switch k {
	case OpSelect:
		return "select"
	case OpExclude:
		return "exclude"
	case OpIgnore:
		return "ignore"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Operation is one journal record: the vertex, its color when the
// operation ran, and the operation kind.
type Operation struct {
	V     core.Vertex
	Color Color
	Kind  OpKind
}

// InvariantError is the panic value for protocol violations on a Context.
type InvariantError struct {
	Op     string
	V      core.Vertex
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("domset: %s(%d): %s", e.Op, e.V, e.Reason)
}

// Result holds the outcome of Solve.
type Result struct {
	// Solution is the best dominating set found, in the order its vertices
	// were selected along the winning search path.
	Solution []core.Vertex

	// Labels are the input labels of Solution, index-aligned.
	Labels []string

	// Size is len(Solution).
	Size int

	// Nodes counts recursive search calls.
	Nodes uint64

	// Optimal is true iff the search space was exhausted, i.e. Solution is
	// a minimum dominating set.
	Optimal bool

	// Elapsed is the wall time spent in Solve.
	Elapsed time.Duration
}
