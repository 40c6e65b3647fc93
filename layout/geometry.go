package layout

import (
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// vec is a 2D vector used by the simulations.
type vec struct{ x, y float64 }

func (a vec) add(b vec) vec { return vec{a.x + b.x, a.y + b.y} }
func (a vec) sub(b vec) vec { return vec{a.x - b.x, a.y - b.y} }
func (a vec) scale(k float64) vec { return vec{a.x * k, a.y * k} }
func (a vec) norm() float64 { return math.Hypot(a.x, a.y) }
func (a vec) pos() core.Position { return core.Position{X: a.x, Y: a.y} }
func (a vec) dist(b vec) float64 { return a.sub(b).norm() }
func (a vec) clampNorm(max float64) vec {
	n := a.norm()
	if n <= max || n == 0 {
		return a
	}

	return a.scale(max / n)
}

// unitFrom returns the unit vector from b toward a and the distance between
// them, floored at eps. Coincident points use the deterministic separation
// direction for indices (i, j).
func unitFrom(a, b vec, i, j int, eps float64) (vec, float64) {
	d := a.sub(b)
	n := d.norm()
	if n < eps {
		return separation(i, j), eps
	}

	return d.scale(1 / n), n
}

// recenter translates pts so their centroid is the origin.
func recenter(pts []vec) {
	if len(pts) == 0 {
		return
	}
	var c vec
	for _, p := range pts {
		c = c.add(p)
	}
	c = c.scale(1 / float64(len(pts)))
	for i := range pts {
		pts[i] = pts[i].sub(c)
	}
}

// rescale centres pts on the origin and scales them so the largest absolute
// coordinate equals scale. A degenerate (single point) set stays at the origin.
func rescale(pts []vec, scale float64) {
	recenter(pts)
	var lim float64
	for _, p := range pts {
		lim = math.Max(lim, math.Max(math.Abs(p.x), math.Abs(p.y)))
	}
	if lim == 0 {
		return
	}
	k := scale / lim
	for i := range pts {
		pts[i] = pts[i].scale(k)
	}
}

// toLayout zips ids and pts into a Layout.
func toLayout(ids []string, pts []vec) Layout {
	out := make(Layout, len(ids))
	for i, id := range ids {
		out[id] = pts[i].pos()
	}

	return out
}

// indexEdges converts the graph's non-loop edges into index pairs over ids.
func indexEdges(g *core.Graph, ids []string) [][2]int {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	edges := g.Edges()
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		if e.Start == e.End {
			continue
		}
		out = append(out, [2]int{index[e.Start], index[e.End]})
	}

	return out
}
