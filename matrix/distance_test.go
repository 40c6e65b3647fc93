// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/builder"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/dijkstra"
	"github.com/katalvlaran/graphlab/matrix"
)

func TestDistanceMatrix_Triangle(t *testing.T) {
	g, err := matrix.FromWeightMatrix(triangle, matrix.WithIDs("A", "B", "C"))
	require.NoError(t, err)

	ids, d, err := matrix.DistanceMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 1.0, d.At(0, 1))
	assert.Equal(t, 3.0, d.At(0, 2))
	assert.Equal(t, 3.0, d.At(2, 0))
}

func TestDistanceMatrix_UnreachableAndLoops(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, id, ""))
	}
	require.NoError(t, g.AddEdge("a", "a", 7, ""))
	require.NoError(t, g.AddEdge("a", "b", 2, ""))

	_, d, err := matrix.DistanceMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.At(0, 0))
	assert.Equal(t, 2.0, d.At(1, 0))
	assert.True(t, math.IsInf(d.At(0, 2), 1))
}

func TestDistanceMatrix_Errors(t *testing.T) {
	_, _, err := matrix.DistanceMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.NewGraph()
	ids, d, err := matrix.DistanceMatrix(g)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Nil(t, d)

	require.NoError(t, g.AddNode("a", "", ""))
	require.NoError(t, g.AddNode("b", "", ""))
	require.NoError(t, g.AddEdge("a", "b", -1, ""))
	_, _, err = matrix.DistanceMatrix(g)
	assert.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func TestDistanceMatrix_AgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(0, 9)},
			builder.RandomSparse(9, 0.35),
		)
		require.NoError(t, err)

		ids, d, err := matrix.DistanceMatrix(g)
		require.NoError(t, err)
		for i, src := range ids {
			res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
			require.NoError(t, err)
			for j, dst := range ids {
				assert.Equal(t, res.Distances[dst], d.At(i, j), "seed %d %s→%s", seed, src, dst)
			}
		}
	}
}
