// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix importers.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero configuration works: IDs default to "0".."n-1", epsilon to DefaultEpsilon.
package matrix

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultEpsilon is the tolerance used by the symmetry check.
const DefaultEpsilon = 1e-9

// Options holds importer settings. Build it through Option values.
type Options struct {
	ids       []string
	eps       float64
	edgeColor string
	nodeColor string
}

// Option mutates Options.
type Option func(*Options)

// WithIDs names the nodes in row order. The count must match the matrix order
// (ErrDimensionMismatch otherwise).
func WithIDs(ids ...string) Option {
	cp := append([]string(nil), ids...)

	return func(o *Options) { o.ids = cp }
}

// WithEpsilon sets the symmetry tolerance. Panics on negative or NaN values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("matrix: WithEpsilon(%g): must be >= 0", eps))
	}

	return func(o *Options) { o.eps = eps }
}

// WithColors sets the node and edge colors of imported elements.
// Empty strings keep the core defaults.
func WithColors(node, edge string) Option {
	return func(o *Options) {
		o.nodeColor = node
		o.edgeColor = edge
	}
}

// gatherOptions applies opts over defaults and resolves IDs for an n×n matrix.
func gatherOptions(n int, opts ...Option) (Options, error) {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = make([]string, n)
		for i := range o.ids {
			o.ids[i] = strconv.Itoa(i)
		}
	}
	if len(o.ids) != n {
		return o, fmt.Errorf("%w: %d ids for order %d", ErrDimensionMismatch, len(o.ids), n)
	}

	return o, nil
}
