// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_complete.go - Complete(n): every unordered pair {i,j}, i<j, joined once.
//
// Contract:
//   - n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   - Edges emitted in lexicographic (i asc, j asc) order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/katalvlaran/graphlab/core"

// Complete returns a Constructor that builds K_n with n(n-1)/2 edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(methodComplete, "n", n, MinCompleteNodes)
		}
		if err := addIndexedNodes(g, cfg, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
