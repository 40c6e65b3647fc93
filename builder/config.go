// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// config.go - resolved builder configuration and its defaults.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphlab/core"
)

// builderConfig is the immutable view every Constructor receives.
type builderConfig struct {
	idFn     IDFn       // index -> node ID
	rng      *rand.Rand // nil unless WithSeed/WithRand was given
	weightFn WeightFn   // edge weight source, consulted once per emitted edge

	nodeColor string
	edgeColor string
}

// newBuilderConfig applies opts over the defaults:
// decimal IDs, no rng, constant DefaultEdgeWeight, core default colours.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		weightFn:  DefaultWeightFn,
		nodeColor: core.DefaultNodeColor,
		edgeColor: core.DefaultEdgeColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
