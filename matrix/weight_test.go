// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/matrix"
)

// triangle is A-B 1, B-C 2, A-C 5 as a weight matrix.
var triangle = [][]float64{
	{0, 1, 5},
	{1, 0, 2},
	{5, 2, 0},
}

func TestFromWeightMatrix_Triangle(t *testing.T) {
	g, err := matrix.FromWeightMatrix(triangle, matrix.WithIDs("A", "B", "C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.Equal(t, 3, g.EdgeCount())

	e, err := g.Edge("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 5.0, e.Weight)

	n, err := g.Node("B")
	require.NoError(t, err)
	assert.Equal(t, "B", n.Label)
}

func TestFromWeightMatrix_DefaultIDsAndMarkers(t *testing.T) {
	m := [][]float64{
		{3, math.Inf(1), 0},
		{math.Inf(-1), 0, 4},
		{0, 4, 0},
	}
	g, err := matrix.FromWeightMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, g.NodeIDs())
	assert.True(t, g.HasEdge("0", "0"), "diagonal becomes a self-loop")
	assert.False(t, g.HasEdge("0", "1"), "Inf means no edge")
	assert.True(t, g.HasEdge("1", "2"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestFromWeightMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		m    [][]float64
		opts []matrix.Option
		want error
	}{
		{"nil", nil, nil, matrix.ErrNilMatrix},
		{"ragged", [][]float64{{0, 1}, {1}}, nil, matrix.ErrNonSquare},
		{"ids", triangle, []matrix.Option{matrix.WithIDs("A", "B")}, matrix.ErrDimensionMismatch},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, nil, matrix.ErrNaNInf},
		{"asym", [][]float64{{0, 1}, {2, 0}}, nil, matrix.ErrAsymmetry},
		{"one-sided", [][]float64{{0, 1}, {0, 0}}, nil, matrix.ErrAsymmetry},
		{"dup ids", triangle, []matrix.Option{matrix.WithIDs("A", "A", "C")}, core.ErrDuplicateNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromWeightMatrix(tc.m, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromWeightMatrix_Epsilon(t *testing.T) {
	m := [][]float64{{0, 1}, {1.001, 0}}
	_, err := matrix.FromWeightMatrix(m)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	g, err := matrix.FromWeightMatrix(m, matrix.WithEpsilon(0.01))
	require.NoError(t, err)
	e, err := g.Edge("0", "1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight, "upper triangle wins")

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

func TestFromAdjacencyMatrix(t *testing.T) {
	m := [][]float64{
		{0, 7, 0},
		{3, 0, 1},
		{0, 1, 0},
	}
	g, err := matrix.FromAdjacencyMatrix(m, matrix.WithColors("red", "gray"))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 1.0, e.Weight)
		assert.Equal(t, "gray", e.Color)
	}
	n, _ := g.Node("0")
	assert.Equal(t, "red", n.Color)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = matrix.FromAdjacencyMatrix([][]float64{{0, 1}, {0, 0}})
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestToWeightMatrix_RoundTrip(t *testing.T) {
	g, err := matrix.FromWeightMatrix(triangle, matrix.WithIDs("A", "B", "C"))
	require.NoError(t, err)
	ids, m, err := matrix.ToWeightMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, triangle, m)

	_, _, err = matrix.ToWeightMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestDense_RoundTrip(t *testing.T) {
	g, err := matrix.FromWeightMatrix(triangle)
	require.NoError(t, err)
	ids, d, err := matrix.ToDense(g)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []string{"0", "1", "2"}, ids)
	assert.True(t, mat.Equal(d, mat.NewDense(3, 3, []float64{0, 1, 5, 1, 0, 2, 5, 2, 0})))

	back, err := matrix.FromDense(d, matrix.WithIDs(ids...))
	require.NoError(t, err)
	assert.Equal(t, g.Snapshot(), back.Snapshot())

	ids, d, err = matrix.ToDense(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Nil(t, d)

	_, err = matrix.FromDense(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestParseWeightMatrix(t *testing.T) {
	src := `
# triangle
0, 1, 5
1  -  2
5;2;0
`
	m, err := matrix.ParseWeightMatrix(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 5}, {1, 0, 2}, {5, 2, 0}}, m)

	_, err = matrix.ParseWeightMatrix(strings.NewReader("0 x\n1 0\n"))
	assert.ErrorIs(t, err, matrix.ErrBadValue)

	_, err = matrix.ParseWeightMatrix(strings.NewReader("0 1 2\n1 0 2\n"))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.ParseWeightMatrix(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWriteWeightMatrix_ParsesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.WriteWeightMatrix(&buf, []string{"A", "B", "C"}, triangle))
	assert.Equal(t, "# A B C\n- 1 5\n1 - 2\n5 2 -\n", buf.String())

	m, err := matrix.ParseWeightMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, triangle, m)
}

func TestReadWeightMatrix_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.WriteWeightMatrix(&buf, []string{"A", "B", "C"}, triangle))
	ids, m, err := matrix.ReadWeightMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, triangle, m)

	ids, _, err = matrix.ReadWeightMatrix(strings.NewReader("# triangle\n0 1\n1 0\n"))
	require.NoError(t, err)
	assert.Nil(t, ids)
}
