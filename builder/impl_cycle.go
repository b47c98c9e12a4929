// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.
// Domination number: ⌈n/3⌉.

package builder

import (
	"github.com/katalvlaran/domset/core"
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodCycle, b, n, cfg.idFn)
		if err != nil {
			return err
		}

		return addRing(MethodCycle, b, vs)
	}
}
