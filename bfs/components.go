package bfs

import (
	"github.com/katalvlaran/graphlab/core"
)

// Components partitions the nodes of g into connected components.
// Components are ordered by their first node in insertion order, and each
// component lists its nodes in BFS visit order from that node.
// A nil or empty graph has no components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			// Node removed concurrently; the caller owns exclusive access.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}

// IsConnected reports whether every node of g is reachable from every other.
// Graphs with zero or one node are connected; a nil graph is not.
func IsConnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	ids := g.NodeIDs()
	if len(ids) <= 1 {
		return true
	}
	res, err := BFS(g, ids[0])
	if err != nil {
		return false
	}

	return len(res.Order) == len(ids)
}

// HopDistances returns the hop count from start to every reached node.
// It is BFS without hooks, kept as a shortcut for distance tables.
func HopDistances(g *core.Graph, start string) (map[string]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
