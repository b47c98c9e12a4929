// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed label "Center" first (index 0 in a fresh graph).
//   - Adds leaves via cfg.idFn for i = 1..n-1 and emits Center-leaf[i] spokes
//     in increasing i.
//
// Complexity: O(n).
// Domination number: 1 (the hub).

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Star returns a Constructor that builds a star with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		hub, err := b.AddVertex(CenterVertexID)
		if err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			leaf, err := b.AddVertex(leafID)
			if err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, leafID, err)
			}
			if err = addEdge(MethodStar, b, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
