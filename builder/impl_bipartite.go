// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left labels "<leftPrefix><i>", then right labels "<rightPrefix><j>".
//   • Cross edges in stable (i over left, j over right) order.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
// Domination number: 1 if min(n1,n2) = 1, else 2.

package builder

import (
	"github.com/katalvlaran/domset/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		lp, rp := cfg.leftPrefix, cfg.rightPrefix
		left, err := addVertices(MethodCompleteBipartite, b, n1, func(i int) string { return vertexID(lp, i) })
		if err != nil {
			return err
		}
		right, err := addVertices(MethodCompleteBipartite, b, n2, func(j int) string { return vertexID(rp, j) })
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(MethodCompleteBipartite, b, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
