package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/render"
)

// corner places A top-left, B top-right and C bottom-left of a 12×12 canvas:
// A→(1,1), B→(10,1), C→(1,10).
func corner(t *testing.T) (*core.Graph, map[string]core.Position) {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, "", ""))
	}
	require.NoError(t, g.AddEdge("A", "B", 1, ""))
	require.NoError(t, g.AddEdge("A", "C", 2, ""))
	require.NoError(t, g.AddEdge("B", "C", 3, "red"))

	return g, map[string]core.Position{
		"A": {X: 0, Y: 0},
		"B": {X: 10, Y: 0},
		"C": {X: 0, Y: 10},
	}
}

func TestDraw_Geometry(t *testing.T) {
	g, pos := corner(t)
	c, err := render.Draw(g, pos, render.WithSize(12, 12), render.WithLabels(false))
	require.NoError(t, err)

	assert.Equal(t, '●', c.At(1, 1))
	assert.Equal(t, '●', c.At(10, 1))
	assert.Equal(t, '●', c.At(1, 10))
	assert.Equal(t, '─', c.At(5, 1))
	assert.Equal(t, '│', c.At(1, 5))
	assert.Equal(t, '/', c.At(5, 6))
	assert.Equal(t, ' ', c.At(8, 8))
	assert.Equal(t, "red", c.Cells[6][5].Color)
}

func TestDraw_Labels(t *testing.T) {
	g, pos := corner(t)
	require.NoError(t, g.AddNode("D", "dee", ""))
	pos["D"] = core.Position{X: 5, Y: 10}

	c, err := render.Draw(g, pos, render.WithSize(12, 12))
	require.NoError(t, err)
	// Empty label falls back to the ID.
	assert.Equal(t, 'A', c.At(2, 1))
	lines := strings.Split(c.String(), "\n")
	assert.Contains(t, lines[10], "●dee")
}

func TestDraw_Highlight(t *testing.T) {
	g, pos := corner(t)
	hl := []core.Edge{{Start: "B", End: "A"}}
	c, err := render.Draw(g, pos, render.WithSize(12, 12), render.WithLabels(false), render.WithHighlight(hl))
	require.NoError(t, err)
	assert.Equal(t, '*', c.At(5, 1))
	assert.Equal(t, render.HighlightColor, c.Cells[1][5].Color)
	assert.Equal(t, '│', c.At(1, 5))
}

func TestDraw_Weights(t *testing.T) {
	g, pos := corner(t)
	c, err := render.Draw(g, pos, render.WithSize(12, 12), render.WithLabels(false), render.WithWeights(true))
	require.NoError(t, err)
	assert.Equal(t, '1', c.At(5, 1))
	assert.Equal(t, '2', c.At(1, 5))
}

func TestDraw_StoredPositions(t *testing.T) {
	g, pos := corner(t)
	require.NoError(t, g.ApplyPositions(pos))
	c, err := render.Draw(g, nil, render.WithSize(12, 12), render.WithLabels(false))
	require.NoError(t, err)
	assert.Equal(t, '●', c.At(10, 1))
}

func TestDraw_SinglePointCentred(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("solo", "", ""))
	c, err := render.Draw(g, nil, render.WithSize(11, 7), render.WithLabels(false))
	require.NoError(t, err)
	assert.Equal(t, '●', c.At(5, 3))
}

func TestDraw_Empty(t *testing.T) {
	c, err := render.Draw(core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Equal(t, render.DefaultWidth, c.W)
	assert.Equal(t, strings.Repeat("\n", render.DefaultHeight-1), c.String())
}

func TestDraw_Errors(t *testing.T) {
	g, pos := corner(t)

	_, err := render.Draw(nil, nil)
	assert.ErrorIs(t, err, render.ErrNilGraph)

	_, err = render.Draw(g, pos, render.WithSize(2, 10))
	assert.ErrorIs(t, err, render.ErrBadSize)

	delete(pos, "C")
	_, err = render.Draw(g, pos)
	assert.ErrorIs(t, err, render.ErrMissingPosition)

	require.NoError(t, g.SetPosition("A", core.Position{X: math.Inf(1)}))
	_, err = render.Draw(g, nil)
	assert.ErrorIs(t, err, render.ErrBadPosition)
}

func TestRender_PlainAndStyled(t *testing.T) {
	g, pos := corner(t)

	plain, err := render.Render(g, pos, render.WithSize(12, 12), render.WithPlain(true))
	require.NoError(t, err)
	assert.NotContains(t, plain, "\x1b[")
	assert.Len(t, strings.Split(plain, "\n"), 12)

	styled, err := render.Render(g, pos, render.WithSize(12, 12))
	require.NoError(t, err)
	assert.Contains(t, styled, "\x1b[")
	assert.Contains(t, styled, "●")
}

func TestPalette_Resolve(t *testing.T) {
	p := render.DefaultPalette()
	_, ok := p.Resolve(" Blue ")
	assert.True(t, ok)
	_, ok = p.Resolve("#123456")
	assert.True(t, ok)
	_, ok = p.Resolve("chartreuse")
	assert.False(t, ok)
	_, ok = p.Resolve("")
	assert.False(t, ok)
}

func TestCanvas_Clipping(t *testing.T) {
	c := render.NewCanvas(3, 1)
	c.SetString(1, 0, "abcdef", "")
	c.Set(-1, 0, 'x', "")
	assert.Equal(t, " ab", c.String())
	assert.Equal(t, rune(0), c.At(5, 5))

	z := render.NewCanvas(-1, -1)
	assert.Equal(t, "", z.Render(render.DefaultPalette()))
}
