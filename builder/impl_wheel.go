// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim C_{n-1} over cfg.idFn(0..n-2), then hub "Center" with spokes to
//     every rim vertex in ascending order.
//
// Complexity: O(n) vertices + O(2n-2) edges.
// Domination number: 1 (the hub).

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + center.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		rim, err := addVertices(MethodWheel, b, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		if err = addRing(MethodWheel, b, rim); err != nil {
			return err
		}
		hub, err := b.AddVertex(CenterVertexID)
		if err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, CenterVertexID, err)
		}
		for _, v := range rim {
			if err = addEdge(MethodWheel, b, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
