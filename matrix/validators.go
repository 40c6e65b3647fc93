// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the shape, value and symmetry checks shared
//     by all importers.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validateSquare ensures m is non-empty and square.
// Complexity: O(n).
func validateSquare(m [][]float64) error {
	if len(m) == 0 {
		return ErrNilMatrix
	}
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), len(m))
		}
	}

	return nil
}

// validateValues rejects NaN entries. ±Inf is allowed and means "no edge".
// Complexity: O(n²).
func validateValues(m [][]float64) error {
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: at [%d][%d]", ErrNaNInf, i, j)
			}
		}
	}

	return nil
}

// validateSymmetric checks |m[i][j] − m[j][i]| ≤ eps on the upper triangle.
// Two "no edge" markers (0 or ±Inf) in mirrored cells are always equal.
// Complexity: O(n²).
func validateSymmetric(m [][]float64, eps float64) error {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			a, b := m[i][j], m[j][i]
			if noEdge(a) && noEdge(b) {
				continue
			}
			if noEdge(a) != noEdge(b) || math.Abs(a-b) > eps {
				return fmt.Errorf("%w: [%d][%d]=%g vs [%d][%d]=%g", ErrAsymmetry, i, j, a, j, i, b)
			}
		}
	}

	return nil
}

// noEdge reports whether a cell value encodes the absence of an edge.
func noEdge(v float64) bool {
	return v == 0 || math.IsInf(v, 0)
}
