// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: paints a positioned graph onto a Canvas.
//
// Drawing order: edges, edge weights, highlighted edges, nodes, labels.
// Later layers overwrite earlier ones, so nodes are never hidden by lines.

package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/graphlab/core"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrBadSize indicates a canvas too small to hold a drawing.
	ErrBadSize = errors.New("render: canvas too small")

	// ErrMissingPosition indicates that the supplied positions omit a node.
	ErrMissingPosition = errors.New("render: node has no position")

	// ErrBadPosition indicates a NaN or infinite coordinate.
	ErrBadPosition = errors.New("render: position is not finite")
)

const (
	// DefaultWidth and DefaultHeight fit a classic 80×24 terminal.
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinSize is the smallest accepted width or height.
	MinSize = 3

	nodeGlyph      = '●'
	highlightGlyph = '*'
)

// Options controls a drawing. Use DefaultOptions and Option functions.
type Options struct {
	Width, Height int
	Labels        bool // write node labels right of the glyph
	Weights       bool // write edge weights at segment midpoints
	Plain         bool // skip ANSI styling
	Palette       Palette
	Highlight     []core.Edge // drawn with HighlightColor over normal edges
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an 80×24 styled drawing with labels and no weights.
func DefaultOptions() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Labels:  true,
		Palette: DefaultPalette(),
	}
}

// WithSize sets the canvas size in cells.
func WithSize(w, h int) Option {
	return func(o *Options) { o.Width, o.Height = w, h }
}

// WithLabels toggles node labels.
func WithLabels(on bool) Option {
	return func(o *Options) { o.Labels = on }
}

// WithWeights toggles edge weight annotations.
func WithWeights(on bool) Option {
	return func(o *Options) { o.Weights = on }
}

// WithPlain disables colour output.
func WithPlain(on bool) Option {
	return func(o *Options) { o.Plain = on }
}

// WithPalette replaces the colour table.
func WithPalette(p Palette) Option {
	return func(o *Options) { o.Palette = p }
}

// WithHighlight marks edges (e.g. a shortest path or an MST) for emphasis.
// Orientation is ignored.
func WithHighlight(edges []core.Edge) Option {
	return func(o *Options) { o.Highlight = edges }
}

// Draw paints g onto a new canvas. positions supplies coordinates per node
// (a layout.Layout works directly); nil uses the positions stored on the nodes.
// The bounding box of all positions is fitted to the canvas, keeping one
// cell of margin.
//
// Errors: ErrNilGraph, ErrBadSize, ErrMissingPosition, ErrBadPosition.
// Complexity: O(V + E·(W+H)).
func Draw(g *core.Graph, positions map[string]core.Position, opts ...Option) (*Canvas, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if o.Width < MinSize || o.Height < MinSize {
		return nil, fmt.Errorf("%w: %dx%d (min %d)", ErrBadSize, o.Width, o.Height, MinSize)
	}
	nodes := g.Nodes()
	pos := make(map[string]core.Position, len(nodes))
	for _, n := range nodes {
		p := n.Position
		if positions != nil {
			var ok bool
			if p, ok = positions[n.ID]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrMissingPosition, n.ID)
			}
		}
		if !finite(p) {
			return nil, fmt.Errorf("%w: %q", ErrBadPosition, n.ID)
		}
		pos[n.ID] = p
	}

	c := NewCanvas(o.Width, o.Height)
	if len(nodes) == 0 {
		return c, nil
	}
	proj := newProjection(pos, o.Width, o.Height)

	// 2. Edges and weights.
	hl := make(map[[2]string]bool, len(o.Highlight))
	for _, e := range o.Highlight {
		hl[[2]string{e.Start, e.End}] = true
		hl[[2]string{e.End, e.Start}] = true
	}
	edges := g.Edges()
	for _, e := range edges {
		if e.Start == e.End || hl[[2]string{e.Start, e.End}] {
			continue
		}
		drawEdge(c, proj, pos[e.Start], pos[e.End], 0, e.Color)
	}
	for _, e := range edges {
		if e.Start != e.End && hl[[2]string{e.Start, e.End}] {
			drawEdge(c, proj, pos[e.Start], pos[e.End], highlightGlyph, HighlightColor)
		}
	}
	if o.Weights {
		for _, e := range edges {
			if e.Start == e.End {
				continue
			}
			x0, y0 := proj.cell(pos[e.Start])
			x1, y1 := proj.cell(pos[e.End])
			w := strconv.FormatFloat(e.Weight, 'g', 4, 64)
			c.SetString((x0+x1)/2-len(w)/2, (y0+y1)/2, w, e.Color)
		}
	}

	// 3. Nodes, then labels.
	for _, n := range nodes {
		x, y := proj.cell(pos[n.ID])
		c.Set(x, y, nodeGlyph, n.Color)
	}
	if o.Labels {
		for _, n := range nodes {
			x, y := proj.cell(pos[n.ID])
			label := n.Label
			if label == "" {
				label = n.ID
			}
			c.SetString(x+1, y, label, n.Color)
		}
	}

	return c, nil
}

// Render draws g and returns the text, styled unless Plain is set.
func Render(g *core.Graph, positions map[string]core.Position, opts ...Option) (string, error) {
	c, err := Draw(g, positions, opts...)
	if err != nil {
		return "", err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Plain {
		return c.String(), nil
	}

	return c.Render(o.Palette), nil
}

// drawEdge rasterises one segment; glyph 0 picks box-drawing runes.
func drawEdge(c *Canvas, proj projection, a, b core.Position, glyph rune, color string) {
	x0, y0 := proj.cell(a)
	x1, y1 := proj.cell(b)
	pts := bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		ch := glyph
		if ch == 0 {
			ch = pointChar(pts, i)
		}
		c.Set(p.X, p.Y, ch, color)
	}
}

// projection maps world coordinates into the canvas interior.
type projection struct {
	lo     core.Position
	sx, sy float64
	ox, oy float64
}

func newProjection(pos map[string]core.Position, w, h int) projection {
	lo := core.Position{X: math.Inf(1), Y: math.Inf(1)}
	hi := core.Position{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pos {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	// Interior spans cells 1..w-2 and 1..h-2.
	iw, ih := float64(w-3), float64(h-3)
	pr := projection{lo: lo, ox: 1, oy: 1}
	if span := hi.X - lo.X; span > 0 {
		pr.sx = iw / span
	} else {
		pr.ox += iw / 2
	}
	if span := hi.Y - lo.Y; span > 0 {
		pr.sy = ih / span
	} else {
		pr.oy += ih / 2
	}

	return pr
}

func (p projection) cell(q core.Position) (int, int) {
	x := p.ox + (q.X-p.lo.X)*p.sx
	y := p.oy + (q.Y-p.lo.Y)*p.sy

	return int(math.Round(x)), int(math.Round(y))
}

func finite(p core.Position) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
