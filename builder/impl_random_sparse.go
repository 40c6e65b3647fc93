// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Model:
//   - Each unordered pair {i,j}, i<j, is included independently with probability p.
//   - Trials run in fixed (i asc, j asc) order; each trial consumes one rng draw
//     and each included edge then consumes one weight draw. A fixed seed therefore
//     reproduces the same graph and weights.
//
// Contract:
//   - n ≥ MinRandomSparseNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability; NaN included).
//   - 0 < p < 1 requires an rng (else ErrNeedRandSource). p=0 and p=1 are
//     deterministic and build the empty graph and K_n respectively.
//
// Complexity: O(n²) trials, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1. Validate before touching the graph.
		if n < MinRandomSparseNodes {
			return tooFew(methodRandomSparse, "n", n, MinRandomSparseNodes)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		stochastic := p > 0 && p < 1
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2. Nodes.
		if err := addIndexedNodes(g, cfg, methodRandomSparse, 0, n); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}

		// 3. Bernoulli trials in fixed order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
