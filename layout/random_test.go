package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/layout"
)

func TestRandom_UnitSquare(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id, "", ""))
	}
	out, err := layout.Random{Seed: 3}.Compute(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, out, 4)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 1.0)
	}
}

func TestRandom_SeedReproducible(t *testing.T) {
	g := buildSample(t)
	a, err := layout.Random{Seed: 99}.Compute(context.Background(), g)
	require.NoError(t, err)
	b, err := layout.Random{Seed: 99}.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := layout.Random{Seed: 100}.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
