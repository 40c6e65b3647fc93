// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/graphlab/core"
)

var inf = math.Inf(1)

// ToWeightMatrix exports g as node IDs (insertion order) and a symmetric
// weight matrix. Absent edges are 0, so zero-weight edges do not survive a
// round trip through FromWeightMatrix.
// Complexity: O(n² + E).
func ToWeightMatrix(g *core.Graph) ([]string, [][]float64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	ids := g.NodeIDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	m := make([][]float64, len(ids))
	for i := range m {
		m[i] = make([]float64, len(ids))
	}
	for _, e := range g.Edges() {
		i, j := index[e.Start], index[e.End]
		m[i][j] = e.Weight
		m[j][i] = e.Weight
	}

	return ids, m, nil
}
