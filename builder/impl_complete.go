// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertices via cfg.idFn(0..n-1); edges {i,j} for i<j in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.
// Domination number: 1.

package builder

import (
	"github.com/katalvlaran/domset/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodComplete, b, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, b, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
