package layout

import (
	"context"
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// Defaults for SpringCharge.
const (
	DefaultSpringIterations        = 200
	DefaultSpringWidth             = 800.0
	DefaultSpringHeight            = 600.0
	DefaultSpringTimeStep          = 0.1
	DefaultSpringDamping           = 0.99
	DefaultSpringChargeConstant    = 5000.0
	DefaultSpringSpringConstant    = 0.1
	DefaultSpringEquilibriumLength = 100.0
)

// springEpsilon floors pair distances used as divisors.
const springEpsilon = 1e-9

// SpringCharge simulates nodes as charged bodies joined by springs along edges,
// inside a Width×Height viewport.
//
// Each step, from the previous positions:
//
//	F_ij  = ChargeConstant / d²                          all pairs, repulsive
//	F_ij += SpringConstant · (d − EquilibriumLength)    edge pairs, attractive when stretched
//	v = (v + F·TimeStep) · Damping
//	p = clamp(p + v·TimeStep, viewport shrunk by Padding)
//
// After the last step, the bounding box of the positions is scaled by the
// viewport/bbox ratio (aspect kept), centred in the viewport, and the y axis is
// flipped so the result uses screen orientation (origin top-left, y down).
//
// Zero-valued fields take the Default* values; Padding defaults to 0. Initial
// positions are uniform in the padded viewport from Seed (0 means a fixed
// default seed).
type SpringCharge struct {
	Iterations        int
	Width             float64
	Height            float64
	TimeStep          float64
	Damping           float64
	ChargeConstant    float64
	SpringConstant    float64
	EquilibriumLength float64
	Padding           float64
	Seed              int64
}

// Kind implements Strategy.
func (SpringCharge) Kind() Kind { return KindSpringCharge }

// resolved returns s with defaults applied, or ErrBadConfig.
func (s SpringCharge) resolved() (SpringCharge, error) {
	var err error
	if s.Iterations, err = iterations(s.Iterations, DefaultSpringIterations); err != nil {
		return s, err
	}
	fields := []struct {
		name string
		v    *float64
		def  float64
	}{
		{"Width", &s.Width, DefaultSpringWidth},
		{"Height", &s.Height, DefaultSpringHeight},
		{"TimeStep", &s.TimeStep, DefaultSpringTimeStep},
		{"Damping", &s.Damping, DefaultSpringDamping},
		{"ChargeConstant", &s.ChargeConstant, DefaultSpringChargeConstant},
		{"SpringConstant", &s.SpringConstant, DefaultSpringSpringConstant},
		{"EquilibriumLength", &s.EquilibriumLength, DefaultSpringEquilibriumLength},
	}
	for _, f := range fields {
		if *f.v, err = positive(f.name, *f.v, f.def); err != nil {
			return s, err
		}
	}
	if s.Damping > 1 {
		return s, badConfig("Damping", s.Damping)
	}
	if math.IsNaN(s.Padding) || s.Padding < 0 || 2*s.Padding >= math.Min(s.Width, s.Height) {
		return s, badConfig("Padding", s.Padding)
	}

	return s, nil
}

// Compute implements Strategy.
// Complexity: O(Iterations · (V² + E)) time, O(V + E) memory.
func (s SpringCharge) Compute(ctx context.Context, g *core.Graph) (Layout, error) {
	// 1) Preconditions, then configuration.
	if err := checkGraph(g, true); err != nil {
		return nil, err
	}
	cfg, err := s.resolved()
	if err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	n := len(ids)
	edges := indexEdges(g, ids)
	minX, maxX := cfg.Padding, cfg.Width-cfg.Padding
	minY, maxY := cfg.Padding, cfg.Height-cfg.Padding

	// 2) Seeded initial placement inside the padded viewport.
	rng := rngFromSeed(cfg.Seed)
	pos := make([]vec, n)
	vel := make([]vec, n)
	for i := range pos {
		pos[i] = vec{minX + rng.Float64()*(maxX-minX), minY + rng.Float64()*(maxY-minY)}
	}
	force := make([]vec, n)

	// 3) Integrate.
	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range force {
			force[i] = vec{}
		}
		// Coulomb repulsion between every pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, d := unitFrom(pos[i], pos[j], i, j, springEpsilon)
				f := u.scale(cfg.ChargeConstant / (d * d))
				force[i] = force[i].add(f)
				force[j] = force[j].sub(f)
			}
		}
		// Hooke springs along edges.
		for _, e := range edges {
			i, j := e[0], e[1]
			u, d := unitFrom(pos[j], pos[i], j, i, springEpsilon)
			f := u.scale(cfg.SpringConstant * (d - cfg.EquilibriumLength))
			force[i] = force[i].add(f)
			force[j] = force[j].sub(f)
		}
		for i := 0; i < n; i++ {
			vel[i] = vel[i].add(force[i].scale(cfg.TimeStep)).scale(cfg.Damping)
			p := pos[i].add(vel[i].scale(cfg.TimeStep))
			pos[i] = vec{clamp(p.x, minX, maxX), clamp(p.y, minY, maxY)}
		}
	}

	// 4) Fit to the viewport and flip to screen orientation.
	fitViewport(pos, minX, maxX, minY, maxY, cfg.Height)

	return toLayout(ids, pos), nil
}

// fitViewport scales pts by the viewport/bbox ratio, centres them in the
// padded viewport and flips y against height.
func fitViewport(pts []vec, minX, maxX, minY, maxY, height float64) {
	lo := vec{math.Inf(1), math.Inf(1)}
	hi := vec{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		lo = vec{math.Min(lo.x, p.x), math.Min(lo.y, p.y)}
		hi = vec{math.Max(hi.x, p.x), math.Max(hi.y, p.y)}
	}
	bw, bh := hi.x-lo.x, hi.y-lo.y
	vw, vh := maxX-minX, maxY-minY

	k := 1.0
	switch {
	case bw > 0 && bh > 0:
		k = math.Min(vw/bw, vh/bh)
	case bw > 0:
		k = vw / bw
	case bh > 0:
		k = vh / bh
	}

	bc := vec{(lo.x + hi.x) / 2, (lo.y + hi.y) / 2}
	vc := vec{(minX + maxX) / 2, (minY + maxY) / 2}
	for i, p := range pts {
		q := p.sub(bc).scale(k).add(vc)
		pts[i] = vec{clamp(q.x, minX, maxX), height - clamp(q.y, minY, maxY)}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
