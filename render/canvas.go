// SPDX-License-Identifier: MIT
//
// File: canvas.go
// Role: fixed-size grid of styled runes.
//
// Cells carry a colour name as their style key; Render resolves names to
// lipgloss styles and merges runs of equal style into a single Render call.
// All runes are assumed to be single-width.

package render

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Cell is one character position.
type Cell struct {
	Ch    rune
	Color string // "" means unstyled
}

// Canvas is a W×H grid of cells, indexed [row][col].
type Canvas struct {
	W, H  int
	Cells [][]Cell
}

// NewCanvas returns a canvas filled with unstyled spaces.
// Negative sizes are treated as zero.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range c.Cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		c.Cells[y] = row
	}

	return c
}

// InBounds reports whether (x, y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.W && y >= 0 && y < c.H
}

// Set writes one rune; out-of-bounds writes are ignored.
func (c *Canvas) Set(x, y int, ch rune, color string) {
	if c.InBounds(x, y) {
		c.Cells[y][x] = Cell{Ch: ch, Color: color}
	}
}

// At returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if !c.InBounds(x, y) {
		return 0
	}

	return c.Cells[y][x].Ch
}

// SetString writes s left to right from (x, y), clipping at the edges.
func (c *Canvas) SetString(x, y int, s string, color string) {
	i := 0
	for _, ch := range s {
		c.Set(x+i, y, ch, color)
		i++
	}
}

// String returns the canvas without styling, rows joined by "\n" and
// trailing spaces trimmed.
func (c *Canvas) String() string {
	lines := make([]string, c.H)
	for y, row := range c.Cells {
		rs := make([]rune, len(row))
		for x, cell := range row {
			rs[x] = cell.Ch
		}
		lines[y] = strings.TrimRight(string(rs), " ")
	}

	return strings.Join(lines, "\n")
}

// Render returns the canvas with foreground colours applied through palette.
// Consecutive cells of the same colour are emitted as one styled run; cells
// whose colour the palette cannot resolve are written plain.
func (c *Canvas) Render(p Palette) string {
	if c.W == 0 || c.H == 0 {
		return ""
	}
	styles := make(map[string]lipgloss.Style)
	styleFor := func(name string) (lipgloss.Style, bool) {
		if s, ok := styles[name]; ok {
			return s, true
		}
		col, ok := p.Resolve(name)
		if !ok {
			return lipgloss.Style{}, false
		}
		s := lipgloss.NewStyle().Foreground(col)
		styles[name] = s

		return s, true
	}

	lines := make([]string, c.H)
	for y, row := range c.Cells {
		var sb strings.Builder
		runStart := 0
		for x := 1; x <= c.W; x++ {
			if x < c.W && row[x].Color == row[runStart].Color {
				continue
			}
			chunk := make([]rune, x-runStart)
			for i := runStart; i < x; i++ {
				chunk[i-runStart] = row[i].Ch
			}
			if s, ok := styleFor(row[runStart].Color); ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			runStart = x
		}
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
