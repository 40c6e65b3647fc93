// SPDX-License-Identifier: MIT

package render

import "image"

// bresenham returns the integer points from (x0,y0) to (x1,y1) inclusive.
// The loop is capped at dx+dy+2 iterations.
func bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	return pts
}

// lineChar picks a box-drawing rune for the local direction (dx, dy).
func lineChar(dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// pointChar derives the rune for pts[i] from its neighbour along the line.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx, dy = pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y
	} else if i > 0 {
		dx, dy = pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y
	}

	return lineChar(dx, dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
