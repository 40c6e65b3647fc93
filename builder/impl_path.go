// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_path.go - Path(n): nodes 0..n-1 joined by edges (i-1)—i.
//
// Contract:
//   - n ≥ MinPathNodes (else ErrTooFewVertices).
//   - Nodes via cfg.idFn in ascending index order.
//   - Edges emitted for i=1..n-1, one weight draw each.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/graphlab/core"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(methodPath, "n", n, MinPathNodes)
		}
		if err := addIndexedNodes(g, cfg, methodPath, 0, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
