// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// FromWeightMatrix builds an undirected graph from a symmetric weight matrix.
//
// Cell semantics:
//   - 0, +Inf and -Inf mean "no edge"; any other value is the edge weight.
//   - A non-zero diagonal cell m[i][i] becomes a self-loop.
//   - NaN is rejected (ErrNaNInf).
//
// Nodes are named by WithIDs or "0".."n-1" and inserted in row order, with
// the ID as label. Edges are inserted row by row from the upper triangle, so
// the result is deterministic.
//
// Errors (in order): ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
// ErrNaNInf, ErrAsymmetry, then any core error (duplicate IDs).
// Complexity: O(n²).
func FromWeightMatrix(m [][]float64, opts ...Option) (*core.Graph, error) {
	return build(m, false, opts...)
}

// FromAdjacencyMatrix builds an unweighted graph: every cell that is not a
// "no edge" marker becomes an edge of weight 1. Validation matches
// FromWeightMatrix, with symmetry checked on the 0/1 structure.
func FromAdjacencyMatrix(m [][]float64, opts ...Option) (*core.Graph, error) {
	return build(m, true, opts...)
}

// build runs the shared validation pipeline and inserts nodes and edges.
func build(m [][]float64, binary bool, opts ...Option) (*core.Graph, error) {
	// 1) Shape and options.
	if err := validateSquare(m); err != nil {
		return nil, err
	}
	n := len(m)
	o, err := gatherOptions(n, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Values and symmetry.
	if err := validateValues(m); err != nil {
		return nil, err
	}
	eps := o.eps
	if binary {
		// Structure only: any two edge markers are "equal".
		eps = inf
	}
	if err := validateSymmetric(m, eps); err != nil {
		return nil, err
	}

	// 3) Nodes in row order.
	g := core.NewGraph()
	for _, id := range o.ids {
		if err := g.AddNode(id, id, o.nodeColor); err != nil {
			return nil, fmt.Errorf("matrix: node %q: %w", id, err)
		}
	}

	// 4) Edges from the upper triangle (diagonal included).
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			w := m[i][j]
			if noEdge(w) {
				continue
			}
			if binary {
				w = 1
			}
			if err := g.AddEdge(o.ids[i], o.ids[j], w, o.edgeColor); err != nil {
				return nil, fmt.Errorf("matrix: edge [%d][%d]: %w", i, j, err)
			}
		}
	}

	return g, nil
}
