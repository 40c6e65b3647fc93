// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Position, Neighbor and Graph declarations, sentinel errors and NewGraph.
// Policy:
//   - The graph is undirected and simple: at most one edge per unordered pair, self-loops allowed.
//   - Node and edge catalogs keep insertion order; every enumeration surface follows it.
//   - No logging, no panics; every failure is a sentinel error (errors.Is-comparable).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node identifier is empty or whitespace only.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID already exists.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates that an edge between the same unordered pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrMissingEndpoint indicates that an edge references a node that does not exist.
	ErrMissingEndpoint = errors.New("core: edge endpoint does not exist")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight that is not a number.
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Default cosmetic colors used when callers pass an empty color.
const (
	DefaultNodeColor = "blue"
	DefaultEdgeColor = "black"
)

// Position is a point in the 2D plane.
// The zero value is the origin.
type Position struct {
	X float64
	Y float64
}

// Node is a labeled vertex of the graph.
//
// Label, Color and Position are pass-through data for renderers and
// serializers; no algorithm in this module interprets them.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Label is the display text.
	Label string

	// Color is a cosmetic color name or hex string.
	Color string

	// Position is the last position written back by the caller (origin by default).
	Position Position
}

// Edge is an undirected weighted connection between two node IDs.
//
// (Start, End) and (End, Start) denote the same edge. Algorithms that return
// edges (paths, spanning trees) orient Start/End along the direction of travel.
type Edge struct {
	// Start is one endpoint.
	Start string

	// End is the other endpoint (equal to Start for a self-loop).
	End string

	// Weight is the cost of traversing the edge.
	Weight float64

	// Color is a cosmetic color name or hex string.
	Color string

	// seq is the insertion sequence number; it orders Edges() and Neighbors().
	seq uint64
}

// Other returns the endpoint of e opposite to id.
// For a self-loop, or when id is not an endpoint, it returns e.Start.
func (e Edge) Other(id string) string {
	if e.Start == id {
		return e.End
	}

	return e.Start
}

// Reversed returns a copy of e with its endpoints swapped.
func (e Edge) Reversed() Edge {
	e.Start, e.End = e.End, e.Start

	return e
}

// Neighbor is one adjacency entry returned by Graph.Neighbors.
type Neighbor struct {
	// ID is the neighbor node ID (equal to the queried ID for a self-loop).
	ID string

	// Weight is the weight of the connecting edge.
	Weight float64
}

// pairKey is the canonical (orientation-free) key of an unordered node pair.
type pairKey struct {
	lo, hi string
}

// keyOf returns the canonical key for the unordered pair {a, b}.
func keyOf(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is an in-memory undirected weighted graph with labeled nodes.
//
// A single RWMutex makes every individual operation atomic. Algorithms read
// the graph through its public API; callers that mutate the graph while a
// computation runs must serialize access themselves.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Storage
	nodes     map[string]*Node // node ID → Node
	nodeOrder []string         // node IDs in insertion order
	edges     map[pairKey]*Edge
	nextSeq   uint64 // monotonically increasing edge sequence

	// adjacency[u][v] = edge between u and v (a self-loop is stored once under adjacency[u][u])
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[pairKey]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
}
