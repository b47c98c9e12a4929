package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → label function. A nil fn is ignored.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand uses r for stochastic constructors. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed installs a fresh RNG seeded with seed (reproducible fixtures).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the label prefixes of CompleteBipartite sides.
// Empty strings fall back to "L" / "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
