// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() and Neighbors() follow edge insertion order (monotonic sequence numbers).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects start and end with an undirected edge.
//
// An empty color falls back to DefaultEdgeColor. Self-loops are allowed.
//
// Steps:
//  1. Validate weight (ErrBadWeight for NaN).
//  2. Both endpoints must exist (ErrMissingEndpoint).
//  3. The unordered pair must be free in either orientation (ErrDuplicateEdge).
//  4. Store the edge and link it into both adjacency buckets (once for a loop).
//
// A failed call leaves the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(start, end string, weight float64, color string) error {
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: %s—%s", ErrBadWeight, start, end)
	}
	if color == "" {
		color = DefaultEdgeColor
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[start]; !ok {
		return fmt.Errorf("%w: %q", ErrMissingEndpoint, start)
	}
	if _, ok := g.nodes[end]; !ok {
		return fmt.Errorf("%w: %q", ErrMissingEndpoint, end)
	}
	key := keyOf(start, end)
	if _, exists := g.edges[key]; exists {
		return fmt.Errorf("%w: %s—%s", ErrDuplicateEdge, start, end)
	}

	g.nextSeq++
	e := &Edge{Start: start, End: end, Weight: weight, Color: color, seq: g.nextSeq}
	g.edges[key] = e
	g.link(start, end, e)
	if start != end {
		g.link(end, start, e)
	}

	return nil
}

// RemoveEdge deletes the edge between start and end (either orientation).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(start, end string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := keyOf(start, end)
	if _, ok := g.edges[key]; !ok {
		return fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, start, end)
	}
	delete(g.edges, key)
	delete(g.adjacency[start], end)
	delete(g.adjacency[end], start)

	return nil
}

// HasEdge reports whether an edge joins a and b, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[keyOf(a, b)]

	return ok
}

// Edge returns a copy of the edge between a and b, oriented as it was added.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) Edge(a, b string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, a, b)
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the adjacency of id as (neighbor, weight) pairs in edge
// insertion order. A self-loop contributes one entry whose ID is id itself.
// Returns ErrNodeNotFound if id does not exist.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	incident := make([]Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		incident = append(incident, *e)
	}
	sortBySeq(incident)

	out := make([]Neighbor, len(incident))
	for i, e := range incident {
		out[i] = Neighbor{ID: e.Other(id), Weight: e.Weight}
	}

	return out, nil
}

// IncidentEdges returns copies of the edges touching id, oriented so that
// Start == id, in insertion order.
// Returns ErrNodeNotFound if id does not exist.
func (g *Graph) IncidentEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		c := *e
		if c.Start != id {
			c = c.Reversed()
		}
		out = append(out, c)
	}
	sortBySeq(out)

	return out, nil
}

// link stores e in adjacency[from][to], creating the bucket lazily.
func (g *Graph) link(from, to string, e *Edge) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]*Edge)
	}
	g.adjacency[from][to] = e
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
