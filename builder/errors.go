// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; messages carry
// the constructor name and offending parameter as wrapped context.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed wraps any failure inside BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
