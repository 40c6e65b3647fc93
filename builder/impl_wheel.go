// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_wheel.go - Wheel(rim): a rim cycle of size rim plus hub CenterVertexID.
//
// Contract:
//   - rim ≥ MinWheelRim (else ErrTooFewVertices).
//   - Rim is built exactly as Cycle(rim), then the hub, then spokes
//     Center—cfg.idFn(i) for i=0..rim-1.
//   - Result has rim+1 nodes and 2*rim edges.
//
// Complexity: O(rim) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// Wheel returns a Constructor that builds the wheel over a rim of the given size.
func Wheel(rim int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rim < MinWheelRim {
			return tooFew(methodWheel, "rim", rim, MinWheelRim)
		}
		if err := Cycle(rim)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addNode(g, cfg, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
