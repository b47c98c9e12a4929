package domset

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// BoundAlgo selects the pruning policy of the search.
type BoundAlgo int

const (
	// NoBound explores every branch; only useful for testing.
	NoBound BoundAlgo = iota
	// SimpleBound prunes when one more vertex cannot beat the incumbent.
	SimpleBound
	// CoverBound prunes with ⌈black / maxCoverage⌉ extra vertices, where
	// maxCoverage is the largest number of Black vertices a single
	// selectable vertex can dominate. It also detects dead ends where some
	// Black vertex can no longer be dominated by anyone.
	CoverBound
)

func (b BoundAlgo) String() string {
	switch b {
	case NoBound:
		return "none"
	case SimpleBound:
		return "simple"
	case CoverBound:
		return "cover"
	}
	return "unknown"
}

// ParseBoundAlgo maps "none", "simple" and "cover" to a BoundAlgo.
func ParseBoundAlgo(s string) (BoundAlgo, error) {
	switch s {
	case "none":
		return NoBound, nil
	case "simple":
		return SimpleBound, nil
	case "cover", "":
		return CoverBound, nil
	}
	return NoBound, ErrUnknownBound
}

// Option configures a Solve call.
type Option func(*Options)

// Options holds the search policy and hooks.
type Options struct {
	// Ctx cancels the search; checked every 1024 nodes.
	// Defaults to context.Background().
	Ctx context.Context

	// TimeLimit is a soft wall-clock budget; 0 disables it.
	TimeLimit time.Duration

	// BoundAlgo selects the pruning policy. Default CoverBound.
	BoundAlgo BoundAlgo

	// SeedGreedy computes a greedy incumbent before the DFS. Default true.
	SeedGreedy bool

	// Paranoid runs CheckInvariants after every rollback and panics on a
	// mismatch. O(V+E) per search node; meant for tests.
	Paranoid bool

	// Logger receives debug-level progress. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// OnNode, if non-nil, is called at every search node with the recursion
	// depth and the number of undominated active vertices. A non-nil error
	// aborts the search and is returned by Solve.
	OnNode func(depth, undominated int) error

	// OnImprove, if non-nil, is called whenever a smaller dominating set is
	// recorded. A non-nil error aborts the search.
	OnImprove func(size int, nodes uint64) error
}

// DefaultOptions returns Options with:
//   - Background context, no time limit
//   - CoverBound pruning with a greedy seed
//   - no hooks, discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		BoundAlgo:  CoverBound,
		SeedGreedy: true,
		Logger:     discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithTimeLimit sets a soft time budget (0 = unlimited).
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithBound sets the pruning policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) { o.BoundAlgo = b }
}

// WithGreedySeed toggles the greedy incumbent.
func WithGreedySeed(on bool) Option {
	return func(o *Options) { o.SeedGreedy = on }
}

// WithParanoid enables invariant checking after every rollback.
func WithParanoid() Option {
	return func(o *Options) { o.Paranoid = true }
}

// WithLogger sets the progress logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnNode sets the per-node hook.
func WithOnNode(fn func(depth, undominated int) error) Option {
	return func(o *Options) { o.OnNode = fn }
}

// WithOnImprove sets the incumbent-improvement hook.
func WithOnImprove(fn func(size int, nodes uint64) error) Option {
	return func(o *Options) { o.OnImprove = fn }
}

func (o *Options) validate() error {
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	switch o.BoundAlgo {
	case NoBound, SimpleBound, CoverBound:
	default:
		return ErrUnknownBound
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	return nil
}
