package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/prim_kruskal"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 5).
//
// This graph’s MST consists of edges A—B and B—C with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, "", ""))
	}
	require.NoError(t, g.AddEdge("A", "B", 1, ""))
	require.NoError(t, g.AddEdge("B", "C", 2, ""))
	require.NoError(t, g.AddEdge("A", "C", 5, ""))

	return g
}

// buildMediumGraph creates a connected, weighted graph with n nodes and edgesCount total edges.
// - First, it ensures connectivity by adding a chain V0—V1—...—V(n-1).
// - Then it adds (edgesCount - (n-1)) additional random edges between distinct, unlinked pairs.
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddNode(fmt.Sprintf("V%d", i), "", "")
	}
	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), float64(1+r.Intn(10)), "")
	}
	maxEdges := n * (n - 1) / 2
	if edgesCount > maxEdges {
		edgesCount = maxEdges
	}
	for g.EdgeCount() < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(1+r.Intn(20)), "")
	}

	return g
}

// isSpanningTree reports whether edges connect all nodes without a cycle.
func isSpanningTree(g *core.Graph, edges []core.Edge) bool {
	ids := g.NodeIDs()
	if len(edges) != len(ids)-1 {
		return false
	}
	parent := make(map[string]string, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	var find func(string) string
	find = func(u string) string {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	for _, e := range edges {
		ru, rv := find(e.Start), find(e.End)
		if ru == rv {
			return false
		}
		parent[ru] = rv
	}

	return true
}

// bruteForceMST tries every (|V|-1)-subset of edges and returns the lightest spanning tree weight.
func bruteForceMST(g *core.Graph) float64 {
	all := g.Edges()
	k := g.NodeCount() - 1
	best := -1.0
	chosen := make([]core.Edge, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == k {
			if isSpanningTree(g, chosen) {
				w := 0.0
				for _, e := range chosen {
					w += e.Weight
				}
				if best < 0 || w < best {
					best = w
				}
			}
			return
		}
		for i := start; i < len(all); i++ {
			chosen = append(chosen, all[i])
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best
}

func TestPrim_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	require.Len(t, edges, 2)
	assert.Equal(t, [3]any{"A", "B", 1.0}, [3]any{edges[0].Start, edges[0].End, edges[0].Weight})
	assert.Equal(t, [3]any{"B", "C", 2.0}, [3]any{edges[1].Start, edges[1].End, edges[1].Weight})
}

func TestPrim_RootOrientsEdges(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(buildTriangle(t), prim_kruskal.WithRoot("C"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	require.Len(t, edges, 2)
	assert.Equal(t, "C", edges[0].Start)
	assert.Equal(t, "B", edges[0].End)
	assert.Equal(t, "B", edges[1].Start)
	assert.Equal(t, "A", edges[1].End)
}

func TestPrim_Trivial(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	g := core.NewGraph()
	require.NoError(t, g.AddNode("solo", "", ""))
	require.NoError(t, g.AddEdge("solo", "solo", 7, ""))
	edges, total, err = prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestPrim_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Prim(buildTriangle(t), prim_kruskal.WithRoot("Z"))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPrim_DisconnectedYieldsRootComponent(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddNode("D", "", ""))
	require.NoError(t, g.AddNode("E", "", ""))
	require.NoError(t, g.AddEdge("D", "E", 4, ""))

	edges, total, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
	assert.Equal(t, 3.0, total)

	edges, total, err = prim_kruskal.Prim(g, prim_kruskal.WithRoot("E"))
	require.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, 4.0, total)
}

func TestPrim_SelfLoopNeverInTree(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge("B", "B", -100, ""))
	edges, total, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	for _, e := range edges {
		assert.NotEqual(t, e.Start, e.End)
	}
}

func TestPrim_TieBreakByInsertionOrder(t *testing.T) {
	// Square with equal weights: the first inserted edges win.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id, "", ""))
	}
	require.NoError(t, g.AddEdge("A", "D", 1, ""))
	require.NoError(t, g.AddEdge("A", "B", 1, ""))
	require.NoError(t, g.AddEdge("B", "C", 1, ""))
	require.NoError(t, g.AddEdge("C", "D", 1, ""))

	for i := 0; i < 5; i++ {
		edges, _, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		require.Len(t, edges, 3)
		assert.Equal(t, "D", edges[0].End)
		assert.Equal(t, "B", edges[1].End)
	}
}

func TestKruskal_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, edges, 2)
}

func TestKruskal_Forest(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddNode("D", "", ""))
	require.NoError(t, g.AddNode("E", "", ""))
	require.NoError(t, g.AddEdge("D", "E", 4, ""))

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, edges, 3)
	assert.Equal(t, 7.0, total)

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestCompute(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddNode("D", "", ""))

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithRequireSpanning()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestPrim_MatchesBruteForceAndKruskal checks minimality on small connected graphs.
func TestPrim_MatchesBruteForceAndKruskal(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		n := 3 + int(seed%6) // 3..8 nodes
		g := buildMediumGraph(n, n+3, seed)

		pEdges, pTotal, err := prim_kruskal.Prim(g)
		require.NoError(t, err)
		kEdges, kTotal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		assert.True(t, isSpanningTree(g, pEdges), "seed %d: prim result is not a spanning tree", seed)
		assert.True(t, isSpanningTree(g, kEdges), "seed %d: kruskal result is not a spanning tree", seed)
		assert.Equal(t, bruteForceMST(g), pTotal, "seed %d", seed)
		assert.Equal(t, pTotal, kTotal, "seed %d", seed)
	}
}
