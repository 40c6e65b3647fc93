// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Record-level read/rebuild contract for persistence collaborators.
// Policy:
//   - Rebuilding always goes through AddNode/AddEdge, so a snapshot loads under
//     exactly the same invariants and errors as interactive edits.
//   - Load is atomic: the receiver changes only if the whole snapshot is valid.

package core

import "fmt"

// NodeRecord is the serializable form of a Node.
type NodeRecord struct {
	ID       string
	Label    string
	Color    string
	Position Position
}

// EdgeRecord is the serializable form of an Edge.
type EdgeRecord struct {
	Start  string
	End    string
	Weight float64
	Color  string
}

// Snapshot is a full, ordered copy of a graph's nodes and edges.
type Snapshot struct {
	Nodes []NodeRecord
	Edges []EdgeRecord
}

// Snapshot returns the graph as records, nodes and edges in insertion order.
// Complexity: O(V + E·log E).
// Nodes and edges are read under one lock, so every edge record's endpoints
// are among the node records.
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Nodes: make([]NodeRecord, 0, len(g.nodeOrder)),
		Edges: make([]EdgeRecord, 0, len(g.edges)),
	}
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		s.Nodes = append(s.Nodes, NodeRecord{ID: n.ID, Label: n.Label, Color: n.Color, Position: n.Position})
	}
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	sortBySeq(edges)
	for _, e := range edges {
		s.Edges = append(s.Edges, EdgeRecord{Start: e.Start, End: e.End, Weight: e.Weight, Color: e.Color})
	}

	return s
}

// FromSnapshot builds a new graph from records.
// Errors are those of AddNode/AddEdge, wrapped with the offending record index.
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := NewGraph()
	for i, n := range s.Nodes {
		if err := g.AddNode(n.ID, n.Label, n.Color); err != nil {
			return nil, fmt.Errorf("core: node record %d: %w", i, err)
		}
		g.nodes[n.ID].Position = n.Position
	}
	for i, e := range s.Edges {
		if err := g.AddEdge(e.Start, e.End, e.Weight, e.Color); err != nil {
			return nil, fmt.Errorf("core: edge record %d: %w", i, err)
		}
	}

	return g, nil
}

// Load replaces the graph's content with the snapshot.
// On error the receiver is left untouched.
func (g *Graph) Load(s Snapshot) error {
	fresh, err := FromSnapshot(s)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = fresh.nodes
	g.nodeOrder = fresh.nodeOrder
	g.edges = fresh.edges
	g.adjacency = fresh.adjacency
	g.nextSeq = fresh.nextSeq

	return nil
}
