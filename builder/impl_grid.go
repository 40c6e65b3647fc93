// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal lattice with 4-neighbourhood.
//
// Model:
//   - Node IDs use the fixed coordinate scheme "r,c" and ignore cfg.idFn.
//   - Nodes are added in row-major order.
//   - For each cell (row-major) the Right edge is emitted before the Bottom edge.
//
// Contract:
//   - rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   - Result has rows*cols nodes and rows*(cols-1) + cols*(rows-1) edges.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// GridID returns the node ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim {
			return tooFew(methodGrid, "rows", rows, MinGridDim)
		}
		if cols < MinGridDim {
			return tooFew(methodGrid, "cols", cols, MinGridDim)
		}

		// 1. Nodes, row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addNode(g, cfg, methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}

		// 2. Edges: Right then Bottom per cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
