package layout

import (
	"context"

	"github.com/katalvlaran/graphlab/core"
)

// Random places every node at independent uniform coordinates in [0,1)×[0,1).
//
// Seed 0 draws a fresh clock-based seed, so repeated calls differ; any other
// seed reproduces the same layout for the same node insertion order.
// Edges are not required.
type Random struct {
	Seed int64
}

// Kind implements Strategy.
func (Random) Kind() Kind { return KindRandom }

// Compute implements Strategy.
// Complexity: O(V).
func (r Random) Compute(ctx context.Context, g *core.Graph) (Layout, error) {
	if err := checkGraph(g, false); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := rngOrClock(r.Seed)
	ids := g.NodeIDs()
	out := make(Layout, len(ids))
	for _, id := range ids {
		out[id] = core.Position{X: rng.Float64(), Y: rng.Float64()}
	}

	return out, nil
}
