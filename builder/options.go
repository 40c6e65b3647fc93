// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate eagerly and panic on programmer error
// (nil functions); constructors themselves only ever return errors.

package builder

import (
	"math/rand"
)

// BuilderOption mutates builderConfig before any Constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index -> ID mapping used by index-based constructors.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand injects a caller-owned rng. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh rng from seed; identical seeds give identical graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight source. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithColors sets the colour given to every generated node and edge.
// Empty strings keep the core defaults.
func WithColors(node, edge string) BuilderOption {
	return func(c *builderConfig) {
		if node != "" {
			c.nodeColor = node
		}
		if edge != "" {
			c.edgeColor = edge
		}
	}
}
