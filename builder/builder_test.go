// Package builder_test verifies topology, counts, ordering and determinism of
// every Constructor.
package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/builder"
	"github.com/katalvlaran/graphlab/core"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)

	return g
}

// pairs returns "u—v" for every edge in insertion order.
func pairs(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.Start+"—"+e.End)
	}

	return out
}

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(4)", builder.Star(4), 4, 3},
		{"Wheel(4)", builder.Wheel(4), 5, 8},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
				assert.Equal(t, core.DefaultEdgeColor, e.Color)
			}
		})
	}
}

func TestPath_Order(t *testing.T) {
	g := build(t, nil, builder.Path(4))
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.NodeIDs())
	assert.Equal(t, []string{"0—1", "1—2", "2—3"}, pairs(g))
}

func TestCycle_ClosesRing(t *testing.T) {
	g := build(t, nil, builder.Cycle(3))
	assert.Equal(t, []string{"0—1", "1—2", "2—0"}, pairs(g))
}

func TestStar_HubFirst(t *testing.T) {
	g := build(t, nil, builder.Star(3))
	assert.Equal(t, []string{builder.CenterVertexID, "1", "2"}, g.NodeIDs())
	deg, err := g.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestWheel_Spokes(t *testing.T) {
	g := build(t, nil, builder.Wheel(4))
	deg, err := g.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
	for i := 0; i < 4; i++ {
		d, err := g.Degree(fmt.Sprint(i))
		require.NoError(t, err)
		assert.Equal(t, 3, d)
	}
}

func TestGrid_IDsAndEdges(t *testing.T) {
	g := build(t, nil, builder.Grid(2, 2))
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.NodeIDs())
	assert.Equal(t, []string{"0,0—0,1", "0,0—1,0", "0,1—1,1", "1,0—1,1"}, pairs(g))
	assert.Equal(t, "1,0", builder.GridID(1, 0))
}

func TestNodesLabelledWithID(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithColors("red", "green")}, builder.Path(2))
	n, err := g.Node("1")
	require.NoError(t, err)
	assert.Equal(t, "1", n.Label)
	assert.Equal(t, "red", n.Color)
	assert.Equal(t, "green", g.Edges()[0].Color)
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(2)", builder.Wheel(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Grid(3,0)", builder.Grid(3, 0), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, builder.ErrConstructFailed)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_DuplicateIDsAcrossConstructors(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), builder.Path(3))
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestBuildGraph_CombinesConstructors(t *testing.T) {
	g := build(t, nil, builder.Path(3), builder.Grid(1, 2))
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 10)}
	}
	a := build(t, opts(), builder.RandomSparse(15, 0.3))
	b := build(t, opts(), builder.RandomSparse(15, 0.3))
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	c := build(t, []builder.BuilderOption{builder.WithSeed(100)}, builder.RandomSparse(15, 0.3))
	assert.NotEqual(t, pairs(a), pairs(c))
}

func TestRandomSparse_WithRand(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g := build(t, []builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(10, 0.5))
	assert.Equal(t, 10, g.NodeCount())
	assert.LessOrEqual(t, g.EdgeCount(), 45)
}

func TestIDSchemes(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())

	g = build(t, []builder.BuilderOption{builder.WithPrefixIDs("v")}, builder.Cycle(3))
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.NodeIDs())

	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 5)(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)

		k := builder.IntWeightFn(1, 3)(rng)
		assert.Contains(t, []float64{1, 2, 3}, k)
	}
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntWeightFn(2, 5)(nil))
	assert.Equal(t, -3.0, builder.ConstantWeightFn(-3)(nil))

	assert.Panics(t, func() { builder.UniformWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.IntWeightFn(3, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestConstantWeightOption(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Star(3))
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}
}
