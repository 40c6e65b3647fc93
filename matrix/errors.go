// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels wrapped with row/column context,
// and tests match them via errors.Is. No function panics on user input.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil input -> shape -> id count -> value (NaN, bad token) -> symmetry.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an exporter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil or empty matrix was passed into an importer.
	ErrNilMatrix = errors.New("matrix: matrix is nil or empty")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that the number of node IDs differs from
	// the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN entry; NaN has no edge meaning in any format.
	ErrNaNInf = errors.New("matrix: NaN encountered")

	// ErrBadValue signals a textual entry that is neither a number nor "-".
	ErrBadValue = errors.New("matrix: invalid matrix value")

	// ErrAsymmetry signals that an undirected matrix violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNegativeWeight signals a negative edge weight where distances are computed.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")
)
