// SPDX-License-Identifier: MIT
// Package: graphlab/matrix
//
// distance.go - all-pairs shortest path matrix (Floyd–Warshall).
//
// Contract:
//   - Rows and columns follow node insertion order (returned as ids).
//   - Diagonal is 0; unreachable pairs are +Inf.
//   - Negative weights are rejected (an undirected negative edge is a negative cycle).
//   - Self-loops never shorten a path.
//
// Complexity: O(V³) time, O(V²) space.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlab/core"
)

// DistanceMatrix returns the all-pairs shortest path distances of g.
// An empty graph yields empty ids and a nil matrix.
func DistanceMatrix(g *core.Graph) ([]string, *mat.Dense, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	// 1. Index nodes and seed the buffer with +Inf off the diagonal.
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return ids, nil, nil
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	data := make([]float64, n*n)
	for i := range data {
		if i/n != i%n {
			data[i] = math.Inf(1)
		}
	}

	// 2. Direct edges.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: %s-%s (%g)", ErrNegativeWeight, e.Start, e.End, e.Weight)
		}
		i, j := index[e.Start], index[e.End]
		if i == j {
			continue
		}
		if e.Weight < data[i*n+j] {
			data[i*n+j] = e.Weight
			data[j*n+i] = e.Weight
		}
	}

	// 3. Relax through every intermediate k.
	floydWarshall(data, n)

	return ids, mat.NewDense(n, n, data), nil
}

// floydWarshall relaxes the row-major n×n buffer in place.
// Only strict improvements are written.
func floydWarshall(data []float64, n int) {
	var (
		baseK, baseI int
		ik, kj, cand float64
	)
	for k := 0; k < n; k++ {
		baseK = k * n
		for i := 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j := 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand = ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
