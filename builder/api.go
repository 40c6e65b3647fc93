// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// api.go - public entry point for assembling graphs from Constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// Constructor adds one topology to g using the resolved builder configuration.
// Constructors are applied in order; a later Constructor may reuse IDs created
// by an earlier one only through edges, never by re-adding nodes.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts once and applies every
// Constructor in order. The first failure aborts the build and is returned
// wrapped with ErrConstructFailed and the failing step index; the partially
// built graph is discarded.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// 1. Resolve configuration once; every constructor sees the same rng stream.
	cfg := newBuilderConfig(bopts...)

	// 2. Fresh graph per build.
	g := core.NewGraph()

	// 3. Apply constructors in caller order.
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%w: constructor #%d is nil", ErrConstructFailed, i)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("%w: constructor #%d: %w", ErrConstructFailed, i, err)
		}
	}

	return g, nil
}
