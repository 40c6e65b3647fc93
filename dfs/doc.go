// Package dfs implements depth-first search traversal and cycle detection
// on an undirected core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - DetectCycles: one cycle per DFS back edge (a fundamental cycle basis),
//     found with White/Gray/Black marking and deduplicated by canonical
//     signature. IsForest is the yes/no shortcut.
//
// Why:
//   - A spanning tree is a forest by construction; DetectCycles verifies it
//     and reports the cycles an MST removes from the original graph.
//   - The CLI prints DFS and BFS visit orders side by side.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: Preorder, post-order Order, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C·L), Memory O(V+L_max)
//     (C = #cycles, L = average cycle length)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start node ID not in graph (matches core.ErrNodeNotFound)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Determinism:
//
//	Neighbors are explored in edge insertion order and forest roots in node
//	insertion order; cycles are sorted by signature.
package dfs
