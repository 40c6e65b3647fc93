package layout

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/dijkstra"
)

// Defaults for StressMinimization.
const (
	DefaultStressIterations = 300
	DefaultStressTolerance  = 1e-4
	DefaultStressScale      = 1.0
)

// disconnectedFactor stretches the largest finite distance to stand in for
// the distance between nodes in different components.
const disconnectedFactor = 1.5

// StressMinimization embeds the graph so that Euclidean distances approximate
// graph-theoretic distances (Kamada-Kawai style).
//
// Algorithm:
//  1. All-pairs distances: Dijkstra over edge weights, or BFS hop counts when
//     IgnoreWeights is set. Pairs in different components use 1.5× the largest
//     finite distance; non-positive distances between distinct nodes are
//     floored to a small fraction of it.
//  2. Seed: classical MDS (top two eigenvectors of the double-centred squared
//     distance matrix), falling back to a circle when the spectrum is degenerate.
//  3. Localized stress majorization with weights d⁻², one Gauss-Seidel sweep
//     per iteration, until the relative stress decrease drops below Tolerance
//     or Iterations sweeps have run.
//  4. Centre on the origin and scale so the largest |coordinate| equals Scale.
//
// Edge weights must be non-negative (dijkstra.ErrNegativeWeight otherwise).
// Zero-valued fields take the Default* values.
type StressMinimization struct {
	Iterations    int
	Tolerance     float64
	Scale         float64
	IgnoreWeights bool
}

// Kind implements Strategy.
func (StressMinimization) Kind() Kind { return KindStress }

// resolved returns s with defaults applied, or ErrBadConfig.
func (s StressMinimization) resolved() (StressMinimization, error) {
	var err error
	if s.Iterations, err = iterations(s.Iterations, DefaultStressIterations); err != nil {
		return s, err
	}
	if s.Tolerance, err = positive("Tolerance", s.Tolerance, DefaultStressTolerance); err != nil {
		return s, err
	}
	if s.Scale, err = positive("Scale", s.Scale, DefaultStressScale); err != nil {
		return s, err
	}

	return s, nil
}

// Compute implements Strategy.
// Complexity: O(V·(V+E) log V) for distances, O(V³) for the seed,
// O(Iterations · V²) for majorization.
func (s StressMinimization) Compute(ctx context.Context, g *core.Graph) (Layout, error) {
	if err := checkGraph(g, true); err != nil {
		return nil, err
	}
	cfg, err := s.resolved()
	if err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	if len(ids) == 1 {
		return Layout{ids[0]: {}}, nil
	}

	dist, err := cfg.distances(ctx, g, ids)
	if err != nil {
		return nil, err
	}
	pts := classicalMDS(dist)

	if err := majorize(ctx, pts, dist, cfg.Iterations, cfg.Tolerance); err != nil {
		return nil, err
	}
	rescale(pts, cfg.Scale)

	return toLayout(ids, pts), nil
}

// distances builds the completed all-pairs distance matrix.
func (s StressMinimization) distances(ctx context.Context, g *core.Graph, ids []string) ([][]float64, error) {
	n := len(ids)
	dist := make([][]float64, n)
	maxFinite := 0.0
	for i, src := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]float64, n)
		if s.IgnoreWeights {
			hops, err := bfs.HopDistances(g, src)
			if err != nil {
				return nil, fmt.Errorf("layout: hop distances from %q: %w", src, err)
			}
			for j, dst := range ids {
				if h, ok := hops[dst]; ok {
					row[j] = float64(h)
				} else {
					row[j] = math.Inf(1)
				}
			}
		} else {
			res, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
			if err != nil {
				return nil, fmt.Errorf("layout: distances from %q: %w", src, err)
			}
			for j, dst := range ids {
				row[j] = res.Distances[dst]
			}
		}
		for _, d := range row {
			if !math.IsInf(d, 1) {
				maxFinite = math.Max(maxFinite, d)
			}
		}
		dist[i] = row
	}

	// All-zero metrics (zero weights or no reachable pairs) become unit distances.
	if maxFinite == 0 {
		maxFinite = 1
	}
	floor := maxFinite * 1e-3
	far := maxFinite * disconnectedFactor
	for i := range dist {
		for j := range dist[i] {
			switch {
			case i == j:
				dist[i][j] = 0
			case math.IsInf(dist[i][j], 1):
				dist[i][j] = far
			case dist[i][j] <= 0:
				dist[i][j] = floor
			}
		}
	}

	return dist, nil
}

// classicalMDS returns 2D coordinates whose distances best match dist in the
// least-squares sense on the double-centred Gram matrix.
func classicalMDS(dist [][]float64) []vec {
	n := len(dist)

	// 1) Squared distances with row and grand means.
	sq := make([]float64, n*n)
	rowMean := make([]float64, n)
	var grand float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := dist[i][j] * dist[i][j]
			sq[i*n+j] = v
			rowMean[i] += v
		}
		grand += rowMean[i]
		rowMean[i] /= float64(n)
	}
	grand /= float64(n * n)

	// 2) B = -½ J D² J.
	b := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[i*n+j] = -0.5 * (sq[i*n+j] - rowMean[i] - rowMean[j] + grand)
		}
	}

	// 3) Top two eigenpairs; gonum returns eigenvalues in ascending order.
	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, b), true) {
		return circle(n)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	l1 := vals[n-1]
	l2 := vals[n-2]
	if l1 <= 1e-12 {
		return circle(n)
	}
	s1 := math.Sqrt(l1)
	s2 := math.Sqrt(math.Max(l2, 0))
	pts := make([]vec, n)
	for i := range pts {
		pts[i] = vec{vecs.At(i, n-1) * s1, vecs.At(i, n-2) * s2}
	}

	// A collinear seed cannot leave its line under majorization; lift it slightly.
	if s2 <= 1e-6*s1 {
		rng := rngFromSeed(0)
		for i := range pts {
			pts[i].y += (rng.Float64() - 0.5) * 1e-3 * s1
		}
	}

	return pts
}

// circle places n points evenly on the unit circle.
func circle(n int) []vec {
	pts := make([]vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec{math.Cos(a), math.Sin(a)}
	}

	return pts
}

// stress is Σ_{i<j} d⁻² (‖p_i − p_j‖ − d)².
func stress(pts []vec, dist [][]float64) float64 {
	var total float64
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := dist[i][j]
			r := pts[i].dist(pts[j]) - d
			total += r * r / (d * d)
		}
	}

	return total
}

// majorize runs localized stress majorization in place.
func majorize(ctx context.Context, pts []vec, dist [][]float64, maxIter int, tol float64) error {
	const eps = 1e-12
	prev := stress(pts, dist)
	for it := 0; it < maxIter; it++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range pts {
			var num vec
			var den float64
			for j := range pts {
				if j == i {
					continue
				}
				d := dist[i][j]
				w := 1 / (d * d)
				u, _ := unitFrom(pts[i], pts[j], i, j, eps)
				num = num.add(pts[j].add(u.scale(d)).scale(w))
				den += w
			}
			pts[i] = num.scale(1 / den)
		}
		cur := stress(pts, dist)
		if prev == 0 || (prev-cur)/prev < tol {
			break
		}
		prev = cur
	}

	return nil
}
