package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkComponents_Grid runs Components on an M×M grid.
func BenchmarkComponents_Grid(b *testing.B) {
	const M = 100
	g := core.NewGraph()
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			_ = g.AddNode(fmt.Sprintf("%d_%d", i, j), "", "")
		}
	}
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < M {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j), 1, "")
			}
			if j+1 < M {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1), 1, "")
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Components(g)
	}
}
