// SPDX-License-Identifier: MIT
package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphlab/core"
)

func BenchmarkAddNodeAndEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		prev := ""
		for j := 0; j < 256; j++ {
			id := strconv.Itoa(j)
			_ = g.AddNode(id, "", "")
			if prev != "" {
				_ = g.AddEdge(prev, id, 1, "")
			}
			prev = id
		}
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddNode("hub", "", "")
	for j := 0; j < 128; j++ {
		id := strconv.Itoa(j)
		_ = g.AddNode(id, "", "")
		_ = g.AddEdge("hub", id, float64(j), "")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
