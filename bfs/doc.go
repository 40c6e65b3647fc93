// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering via
//     WithFilterNeighbor, and a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components and IsConnected answer the connectivity questions that
//     spanning-tree and layout callers must settle before relying on a full result.
//
// Why
//
//   - Edge weights are ignored, so BFS doubles as the hop-count metric used by
//     the stress layout when weights are switched off.
//   - Prim returns a partial tree and stress layout approximates distances on
//     disconnected graphs; IsConnected is the cheap pre-check.
//
// Determinism
//
//	core.Graph.Neighbors lists adjacency in edge insertion order and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "start", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ctx error or hook error
//	}
//	path, _ := result.PathTo("goal")
package bfs
