// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// constants.go - constructor names (error context), fixed IDs and minima.

package builder

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// CenterVertexID is the fixed hub ID used by Star and Wheel.
const CenterVertexID = "Center"

const (
	// MinPathNodes is the smallest path with at least one edge.
	MinPathNodes = 2
	// MinCycleNodes is the smallest ring without self-loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes counts the hub plus one leaf.
	MinStarNodes = 2
	// MinWheelRim is the smallest rim cycle of a wheel.
	MinWheelRim = 3
	// MinCompleteNodes allows K1 (a single isolated node).
	MinCompleteNodes = 1
	// MinGridDim applies to both rows and cols.
	MinGridDim = 1
	// MinRandomSparseNodes allows a single isolated node.
	MinRandomSparseNodes = 1
)

// gridIDFmt is the fixed "r,c" coordinate scheme used by Grid.
const gridIDFmt = "%d,%d"
