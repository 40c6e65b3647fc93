// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces a minimum spanning forest of an undirected, weighted *core.Graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/graphlab/core"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
// On a connected graph the forest is a single MST with |V|-1 edges.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil.
//
// Steps:
//  1. Validate: graph != nil.
//  2. If |V| <= 1 → trivial MST (empty, weight=0).
//  3. Collect all edges via graph.Edges() (insertion order), skip self-loops.
//  4. Sort edges by ascending Weight (sort.SliceStable keeps insertion order for equal weights).
//  5. Initialize DSU maps parent[] and rank[] for each node.
//  6. Loop over sorted edges: for each edge (u,v), if find(u) != find(v), then union(u,v) and include edge.
//  7. Stop early once the forest has |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Retrieve all node IDs in insertion order for determinism.
	nodes := graph.NodeIDs()
	if len(nodes) <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect all edges from graph, skipping self-loops to avoid trivial cycles.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.Start == e.End {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort edges by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Initialize disjoint-set (union-find) structures.
	parent := make(map[string]string, len(nodes))
	rank := make(map[string]int, len(nodes))
	for _, id := range nodes {
		parent[id] = id
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(rootU, rootV string) {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 6. Build the forest by iterating over sorted edges.
	var (
		forest      = make([]core.Edge, 0, len(nodes)-1)
		totalWeight float64
	)
	for _, e := range edges {
		ru, rv := find(e.Start), find(e.End)
		if ru == rv {
			continue
		}
		union(ru, rv)
		forest = append(forest, e)
		totalWeight += e.Weight
		// 7. A full spanning tree cannot grow further.
		if len(forest) == len(nodes)-1 {
			break
		}
	}

	return forest, totalWeight, nil
}
