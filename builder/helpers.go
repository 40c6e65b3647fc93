// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// helpers.go - shared insertion helpers with uniform error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// addNode inserts id with label=id and the configured node colour.
func addNode(g *core.Graph, cfg builderConfig, method, id string) error {
	if err := g.AddNode(id, id, cfg.nodeColor); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// addIndexedNodes inserts cfg.idFn(from) .. cfg.idFn(to-1) in ascending order.
func addIndexedNodes(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		if err := addNode(g, cfg, method, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addEdge draws one weight and inserts u—v with the configured edge colour.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w, cfg.edgeColor); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew formats the common "parameter below minimum" failure.
func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}
