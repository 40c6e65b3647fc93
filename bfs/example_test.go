package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (9 nodes).
// The start is "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = g.AddNode(fmt.Sprintf("%d_%d", i, j), "", "")
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1, "")
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1, "")
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleComponents groups nodes by reachability.
func ExampleComponents() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddNode(id, "", "")
	}
	_ = g.AddEdge("a", "c", 1, "")

	fmt.Println(bfs.Components(g), bfs.IsConnected(g))
	// Output: [[a c] [b] [d]] false
}
