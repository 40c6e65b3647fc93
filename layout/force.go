package layout

import (
	"context"

	"github.com/katalvlaran/graphlab/core"
)

// Defaults for ForceDirected.
const (
	DefaultForceIterations = 50
	DefaultForceStep       = 0.05
	DefaultForceMaxForce   = 10.0
	DefaultForceGravity    = 0.05
	DefaultForceEpsilon    = 1e-9
)

// ForceDirected is an iterative attraction/repulsion/gravity simulation with
// a fixed iteration count.
//
// Per iteration and per node i, from the previous iteration's positions:
//
//	F = Σ_neighbors  û(i→j) · 1/d        attraction
//	  + Σ_others     û(j→i) · 1/d²       repulsion
//	  − Gravity · p_i                    pull toward the origin
//	F = clamp(|F| ≤ MaxForce)
//	p_i' = p_i + Step · F
//
// All nodes move simultaneously, then the centroid is moved back to the origin.
// Distances used as divisors are floored at Epsilon; coincident nodes separate
// along a direction derived from their indices. Self-loops exert no force.
//
// Zero-valued fields take the Default* values, so a zero Gravity cannot switch
// the pull off; set NoGravity for that. Initial positions are uniform
// in [-1,1]² from Seed (0 means a fixed default seed, so output is reproducible).
type ForceDirected struct {
	Iterations int
	Step       float64
	MaxForce   float64
	Gravity    float64
	Epsilon    float64
	Seed       int64
	NoGravity  bool
}

// Kind implements Strategy.
func (ForceDirected) Kind() Kind { return KindForceDirected }

// resolved returns f with defaults applied, or ErrBadConfig.
func (f ForceDirected) resolved() (ForceDirected, error) {
	var err error
	if f.Iterations, err = iterations(f.Iterations, DefaultForceIterations); err != nil {
		return f, err
	}
	if f.Step, err = positive("Step", f.Step, DefaultForceStep); err != nil {
		return f, err
	}
	if f.MaxForce, err = positive("MaxForce", f.MaxForce, DefaultForceMaxForce); err != nil {
		return f, err
	}
	if f.NoGravity {
		f.Gravity = 0
	} else if f.Gravity, err = positive("Gravity", f.Gravity, DefaultForceGravity); err != nil {
		return f, err
	}
	if f.Epsilon, err = positive("Epsilon", f.Epsilon, DefaultForceEpsilon); err != nil {
		return f, err
	}

	return f, nil
}

// Compute implements Strategy.
// Complexity: O(Iterations · (V² + E)) time, O(V + E) memory.
func (f ForceDirected) Compute(ctx context.Context, g *core.Graph) (Layout, error) {
	// 1) Preconditions, then configuration.
	if err := checkGraph(g, true); err != nil {
		return nil, err
	}
	cfg, err := f.resolved()
	if err != nil {
		return nil, err
	}

	// 2) Snapshot topology in insertion order.
	ids := g.NodeIDs()
	n := len(ids)
	adj := make([][]int, n)
	for _, e := range indexEdges(g, ids) {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	// 3) Seeded initial placement in [-1,1]².
	rng := rngFromSeed(cfg.Seed)
	pos := make([]vec, n)
	for i := range pos {
		pos[i] = vec{2*rng.Float64() - 1, 2*rng.Float64() - 1}
	}
	next := make([]vec, n)

	// 4) Synchronous updates.
	for it := 0; it < cfg.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			var force vec
			for _, j := range adj[i] {
				u, d := unitFrom(pos[j], pos[i], j, i, cfg.Epsilon)
				force = force.add(u.scale(1 / d))
			}
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				u, d := unitFrom(pos[i], pos[j], i, j, cfg.Epsilon)
				force = force.add(u.scale(1 / (d * d)))
			}
			force = force.sub(pos[i].scale(cfg.Gravity))
			force = force.clampNorm(cfg.MaxForce)
			next[i] = pos[i].add(force.scale(cfg.Step))
		}
		pos, next = next, pos
		recenter(pos)
	}

	return toLayout(ids, pos), nil
}
