// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_cycle.go - Cycle(n): the path 0..n-1 closed by the edge (n-1)—0.
//
// Contract:
//   - n ≥ MinCycleNodes (else ErrTooFewVertices).
//   - Edges emitted i—(i+1) mod n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/katalvlaran/graphlab/core"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(methodCycle, "n", n, MinCycleNodes)
		}
		if err := addIndexedNodes(g, cfg, methodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
