// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Whole-graph maintenance: Clear, Clone and Stats.

package core

// Clear resets the graph to the empty state. Nothing survives: nodes, edges,
// adjacency and the edge sequence counter are all dropped.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*Node)
	g.nodeOrder = nil
	g.edges = make(map[pairKey]*Edge)
	g.adjacency = make(map[string]map[string]*Edge)
	g.nextSeq = 0
}

// Clone returns a deep copy of the graph that preserves insertion order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nodeOrder = make([]string, len(g.nodeOrder))
	copy(clone.nodeOrder, g.nodeOrder)
	for id, n := range g.nodes {
		c := *n
		clone.nodes[id] = &c
	}
	for key, e := range g.edges {
		c := *e
		clone.edges[key] = &c
		clone.link(c.Start, c.End, &c)
		if c.Start != c.End {
			clone.link(c.End, c.Start, &c)
		}
	}
	clone.nextSeq = g.nextSeq

	return clone
}

// GraphStats is a read-only summary of a graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	SelfLoopCount int
	TotalWeight   float64
	HasNegative   bool
}

// Stats returns a snapshot of counts and weight information.
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		if e.Start == e.End {
			s.SelfLoopCount++
		}
		if e.Weight < 0 {
			s.HasNegative = true
		}
		s.TotalWeight += e.Weight
	}

	return s
}
