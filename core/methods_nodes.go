// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - NodeIDs() and Nodes() follow insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"strings"
)

// AddNode inserts a new node.
//
// An empty color falls back to DefaultNodeColor. The node starts at the origin.
//
// Errors:
//   - ErrEmptyNodeID: id is empty or whitespace only.
//   - ErrDuplicateNode: a node with this id already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label, color string) error {
	if err := validateNodeID(id); err != nil {
		return err
	}
	if color == "" {
		color = DefaultNodeColor
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Label: label, Color: color}
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// Returns ErrNodeNotFound if it does not exist.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return *n, nil
}

// RemoveNode deletes a node and every edge incident to it.
//
// Steps:
//  1. Verify presence (ErrNodeNotFound).
//  2. Drop each incident edge from the catalog and from the neighbor's bucket.
//  3. Drop the node, its bucket and its slot in the insertion order.
//
// Complexity: O(deg(v) + V) (the order slice is compacted).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	for nbr := range g.adjacency[id] {
		delete(g.edges, keyOf(id, nbr))
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	for i, nid := range g.nodeOrder {
		if nid == id {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.nodeOrder))
	copy(ids, g.nodeOrder)

	return ids
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// SetPosition stores a position on an existing node.
// Returns ErrNodeNotFound if the node does not exist.
func (g *Graph) SetPosition(id string, p Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	n.Position = p

	return nil
}

// ApplyPositions writes a batch of positions back into the graph, typically
// the result of a layout computation.
//
// The update is all-or-nothing: if any ID is unknown, ErrNodeNotFound is
// returned and no position changes. Nodes missing from the map keep theirs.
func (g *Graph) ApplyPositions(positions map[string]Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id := range positions {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	for id, p := range positions {
		g.nodes[id].Position = p
	}

	return nil
}

// Degree returns the number of edge endpoints at id.
// A self-loop counts twice (classic graph-theory convention).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	deg := 0
	for nbr := range g.adjacency[id] {
		if nbr == id {
			deg += 2
			continue
		}
		deg++
	}

	return deg, nil
}

// validateNodeID rejects empty and whitespace-only identifiers.
func validateNodeID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyNodeID
	}

	return nil
}
