package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not complete.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownIDScheme indicates an ID scheme name IDScheme does not know.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")

// ErrIDSchemeExhausted indicates a scheme that cannot label as many vertices
// as requested.
var ErrIDSchemeExhausted = errors.New("builder: id scheme exhausted")

// builderErrorf prefixes a message with the constructor name and wraps sentinel.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
