// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices via cfg.idFn(0..n-1); edges i-i+1 in ascending i.
//
// Complexity: O(n).
// Domination number: ⌈n/3⌉.

package builder

import (
	"github.com/katalvlaran/domset/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodPath, b, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(MethodPath, b, vs[i], vs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
