// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// weight_fn.go - edge weight sources.
//
// Every WeightFn tolerates a nil rng by returning DefaultEdgeWeight, so
// deterministic builds never need a seed.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn returns the weight for the next emitted edge.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value is NaN.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) {
		panic("ConstantWeightFn: value is NaN")
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly from [min, max).
// Panics unless 0 ≤ min ≤ max and both are finite.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < +Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples integers uniformly from [min, max] (inclusive).
// Panics unless 0 ≤ min ≤ max.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight is shorthand for WithWeightFn(IntWeightFn(min, max)).
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}
