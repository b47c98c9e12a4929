// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Labels use the fixed scheme "r,c" (row-major order), a deliberate
//     exception to cfg.idFn to keep coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom neighbor edges.
//
// Complexity: O(rows·cols).

package builder

import (
	"github.com/katalvlaran/domset/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		cells, err := addVertices(MethodGrid, b, rows*cols, func(i int) string {
			return gridVertexID(i/cols, i%cols)
		})
		if err != nil {
			return err
		}
		at := func(r, c int) core.Vertex { return cells[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = addEdge(MethodGrid, b, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, b, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
