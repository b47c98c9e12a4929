// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • d-regular simple graph via stub-matching with bounded retries.
//   • Pairs stubs after a deterministic shuffle (per seed). A pairing with a
//     self-pair or a repeated pair is rejected before touching the builder,
//     and the stubs are reshuffled up to a small limit.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity: ~O(n·d) per attempt; attempts are constant-bounded.
//
// Determinism:
//   • Fixed attempt limit and trial order → identical outcomes for the same seed.
//   • Either a valid realization is produced, or ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// maxStubMatchingAttempts bounds reshuffles; the probability of a simple
// pairing drops quickly with d, so keep d small.
const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor that builds a d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "degree must be in [0,%d), got %d", n, d)
		}
		if (n*d)%2 != 0 {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "n*d must be even (n=%d, d=%d)", n, d)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}
		vs, err := addVertices(MethodRandomRegular, b, n, cfg.idFn)
		if err != nil {
			return err
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		seen := make(map[[2]int]struct{}, stubCount/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			clear(seen)
			valid := true
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err = addEdge(MethodRandomRegular, b, vs[stubs[i]], vs[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
