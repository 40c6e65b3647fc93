// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all nodes in V and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     A drawn graph can highlight its MST, and the CLI prints it next to the layout.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) ([]core.Edge, float64, error)
//
//   - Strategy: grow a single tree from a root node. A min-heap holds candidate edges leaving the
//     tree, ordered by (weight, edge insertion order). Popped edges whose far end is already in the
//     tree are stale and skipped. Self-loops never enter the heap.
//
//   - Root: WithRoot(id), or the first inserted node by default.
//
//   - Disconnected graphs: the result spans the root's component only, without error.
//
//   - Orientation: each returned edge has Start inside the tree and End the newly added node.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all non-loop edges by weight, then merge components with
//     union-find (path compression, union by rank). Produces a minimum spanning forest.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, float64, error)
//
//   - Dispatches on MSTOptions.Method; with RequireSpanning, partial results become ErrDisconnected.
//
// Both algorithms return the same total weight on a connected graph. Edge sets may differ
// only when several MSTs exist.
//
// Error Conditions
//
//   - ErrInvalidGraph:      graph is nil.
//   - core.ErrNodeNotFound: Prim root does not exist.
//   - ErrUnknownMethod:     Compute with an unrecognised Method.
//   - ErrDisconnected:      Compute with RequireSpanning on a graph with several components.
//
// Determinism
//
//   - Node and edge lists come from core.Graph in insertion order; ties in weight are broken by
//     edge insertion order in both algorithms.
package prim_kruskal
