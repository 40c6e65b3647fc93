// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST of an undirected, weighted *core.Graph from a root node using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a root node using a min‐heap of candidate edges.
//
// The root defaults to the first node in insertion order; WithRoot overrides it.
// When the graph is disconnected, the result spans only the root's component
// and no error is returned; compare len(edges) with NodeCount()-1 (or use
// Compute with WithRequireSpanning) to detect it.
//
// Error Conditions:
//   - ErrInvalidGraph      : if graph is nil.
//   - core.ErrNodeNotFound : if an explicit root does not exist in the graph.
//
// Steps:
//  1. Validate graph and resolve options.
//  2. If |V| <= 1 return an empty tree.
//  3. Resolve root (explicit or first inserted) and rank every edge by insertion order.
//  4. Mark root as visited and push all its non-loop edges.
//  5. While pq not empty and MST has < |V|-1 edges:
//     a. Pop the smallest (weight, rank) edge (u→v).
//     b. If v is already visited, skip (stale: this edge would form a cycle).
//     c. Otherwise, add (u→v) to MST, mark v as visited, accumulate weight.
//     d. Push all edges from v to as‐yet‐unvisited neighbors.
//  6. Return MST edges (each oriented tree→new node) and total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate that graph is non-nil and resolve options.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	cfg := NewOptions(opts...)

	// 2. Trivial graphs: nothing to connect.
	nodes := graph.NodeIDs()
	if cfg.Root != "" && !graph.HasNode(cfg.Root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %q: %w", cfg.Root, core.ErrNodeNotFound)
	}
	if len(nodes) <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Resolve root and edge ranks.
	root := cfg.Root
	if root == "" {
		root = nodes[0]
	}
	ranks := edgeRanks(graph)

	n := len(nodes)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u string) error {
		incident, err := graph.IncidentEdges(u)
		if err != nil {
			return err
		}
		for _, e := range incident {
			if e.End == u || visited[e.End] {
				continue
			}
			heap.Push(pq, &edgeItem{edge: e, rank: ranks[pair{e.Start, e.End}]})
		}

		return nil
	}

	// 4. Mark root as visited and push all edges adjacent to root.
	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 5. Main loop: extract smallest edge and expand MST until we have n-1 edges.
	for pq.Len() > 0 && len(mst) < n-1 {
		item := heap.Pop(pq).(*edgeItem)
		v := item.edge.End
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, item.edge)
		totalWeight += item.edge.Weight

		if err := push(v); err != nil {
			return nil, 0, err
		}
	}

	// 6. Return the tree of the root's component and its total weight.
	return mst, totalWeight, nil
}

// pair is an ordered endpoint pair used to look up edge ranks.
type pair struct{ a, b string }

// edgeRanks maps both orientations of every edge to its insertion rank.
func edgeRanks(graph *core.Graph) map[pair]int {
	edges := graph.Edges()
	ranks := make(map[pair]int, 2*len(edges))
	for i, e := range edges {
		ranks[pair{e.Start, e.End}] = i
		ranks[pair{e.End, e.Start}] = i
	}

	return ranks
}

// edgeItem is a heap entry: an edge oriented away from the tree and its insertion rank.
type edgeItem struct {
	edge core.Edge
	rank int
}

// edgePQ implements heap.Interface for a min‐heap of *edgeItem, ordered by (Weight, rank).
type edgePQ []*edgeItem

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then by insertion rank.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].rank < pq[j].rank
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *edgeItem to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*edgeItem))
}

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
