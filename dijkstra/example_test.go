package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/dijkstra"
)

// ExampleShortestPath finds the cheaper two-hop route over the direct edge.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id, "", "")
	}
	_ = g.AddEdge("A", "B", 1, "")
	_ = g.AddEdge("B", "C", 2, "")
	_ = g.AddEdge("A", "C", 5, "")

	d, path, _ := dijkstra.ShortestPath(g, "A", "C")
	fmt.Println("distance:", d)
	for _, e := range path {
		fmt.Printf("%s->%s (%g)\n", e.Start, e.End, e.Weight)
	}
	// Output:
	// distance: 3
	// A->B (1)
	// B->C (2)
}

// ExampleDijkstra_maxDistance caps exploration; farther nodes stay unreached.
func ExampleDijkstra_maxDistance() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNode(id, "", "")
	}
	_ = g.AddEdge("A", "B", 2, "")
	_ = g.AddEdge("B", "C", 2, "")

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	for _, id := range g.NodeIDs() {
		fmt.Printf("%s=%v reachable=%v\n", id, res.Distances[id], res.Reachable(id))
	}
	// Output:
	// A=0 reachable=true
	// B=2 reachable=true
	// C=+Inf reachable=false
}
