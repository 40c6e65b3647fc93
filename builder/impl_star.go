// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_star.go - Star(n): hub CenterVertexID plus n-1 leaves.
//
// Contract:
//   - n ≥ MinStarNodes (else ErrTooFewVertices); n counts the hub.
//   - Hub is added first, then leaves cfg.idFn(1)..cfg.idFn(n-1).
//   - Spokes emitted Center—leaf in ascending leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/graphlab/core"

// Star returns a Constructor that builds the star S_n.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(methodStar, "n", n, MinStarNodes)
		}
		if err := addNode(g, cfg, methodStar, CenterVertexID); err != nil {
			return err
		}
		if err := addIndexedNodes(g, cfg, methodStar, 1, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
