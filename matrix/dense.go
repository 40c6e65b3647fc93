// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlab/core"
)

// ToDense exports g as a gonum dense weight matrix, rows and columns in node
// insertion order (returned as ids). Cell semantics match ToWeightMatrix.
func ToDense(g *core.Graph) ([]string, *mat.Dense, error) {
	ids, m, err := ToWeightMatrix(g)
	if err != nil {
		return nil, nil, err
	}
	n := len(ids)
	if n == 0 {
		// gonum rejects zero-sized matrices.
		return ids, nil, nil
	}
	data := make([]float64, 0, n*n)
	for _, row := range m {
		data = append(data, row...)
	}

	return ids, mat.NewDense(n, n, data), nil
}

// FromDense imports any gonum matrix through FromWeightMatrix.
func FromDense(a mat.Matrix, opts ...Option) (*core.Graph, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()
	m := make([][]float64, r)
	for i := range m {
		m[i] = make([]float64, c)
		for j := range m[i] {
			m[i][j] = a.At(i, j)
		}
	}

	return FromWeightMatrix(m, opts...)
}
