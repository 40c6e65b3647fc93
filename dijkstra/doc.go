// Package dijkstra provides Dijkstra's shortest-path algorithm on undirected
// weighted graphs (core.Graph) with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Paths are reconstructed as ordered edge sequences, each edge oriented away
//     from the source, so consumers can highlight them directly.
//
// When to use:
//
//   - Route queries between two nodes of a drawn graph (ShortestPath).
//   - All-pairs distance tables for layout strategies (one run per node).
//   - Reachability tests with a distance cap (WithMaxDistance).
//
// Determinism:
//
//   - Ties between equal tentative distances are broken by node insertion
//     order, and edges are relaxed in edge insertion order. Among equal-cost
//     paths the one found first under that order wins, identically across runs.
//
// Error handling (sentinel errors, checked in this order):
//
//   - ErrEmptySource:    the Source string is empty.
//   - ErrNilGraph:       a nil *core.Graph was passed.
//   - ErrNodeNotFound:   the source (then the target) is not in the graph.
//   - ErrNegativeWeight: some edge has a negative weight (O(E) pre-scan).
//   - ErrNoPath:         target mode only; the target is unreachable.
//   - ErrBadMaxDistance: raised via panic by WithMaxDistance on a negative value.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//	func ShortestPath(g *core.Graph, source, target string) (float64, []core.Edge, error)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddNode("A", "", "")
//	_ = g.AddNode("B", "", "")
//	_ = g.AddNode("C", "", "")
//	_ = g.AddEdge("A", "B", 1, "")
//	_ = g.AddEdge("B", "C", 2, "")
//	_ = g.AddEdge("A", "C", 5, "")
//
//	d, path, err := dijkstra.ShortestPath(g, "A", "C")
//	// d == 3, path == [A—B, B—C]
package dijkstra
