// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by node insertion index, so equal-cost paths resolve identically every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// Dijkstra computes shortest distances and paths from Options.Source.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source, and Target when set (ErrNodeNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// With Target set, the run stops once the target is settled and returns
// ErrNoPath if it was never reached.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, ErrNodeNotFound)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("dijkstra: target %q: %w", cfg.Target, ErrNodeNotFound)
	}

	// 2) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s—%s weight=%g", ErrNegativeWeight, e.Start, e.End, e.Weight)
		}
	}

	// 3) Prepare runner state and run the main loop.
	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	res := r.result()
	if cfg.Target != "" && !res.Reachable(cfg.Target) {
		return res, fmt.Errorf("%w: %s → %s", ErrNoPath, cfg.Source, cfg.Target)
	}

	return res, nil
}

// ShortestPath is the single-target form: it returns the distance and the
// ordered edges from source to target, or ErrNoPath.
func ShortestPath(g *core.Graph, source, target string) (float64, []core.Edge, error) {
	res, err := Dijkstra(g, Source(source), Target(target))
	if err != nil {
		return math.Inf(1), nil, err
	}

	return res.PathTo(target)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	order   []string             // node IDs in insertion order
	index   map[string]int       // node ID → insertion index (tie-break key)
	dist    map[string]float64   // best known distance from Source
	via     map[string]core.Edge // edge used to reach a node, oriented toward it
	visited map[string]bool      // settled nodes
	pq      nodePQ
}

func newRunner(g *core.Graph, cfg Options) *runner {
	order := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		order:   order,
		index:   make(map[string]int, len(order)),
		dist:    make(map[string]float64, len(order)),
		via:     make(map[string]core.Edge, len(order)),
		visited: make(map[string]bool, len(order)),
		pq:      make(nodePQ, 0, len(order)),
	}
	for i, v := range order {
		r.index[v] = i
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0, idx: r.index[cfg.Source]})

	return r
}

// process repeatedly settles the closest unsettled node and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: already settled, or superseded by a shorter push.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled node u.
func (r *runner) relax(u string) error {
	edges, err := r.g.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.End
		if v == u || r.visited[v] {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.via[v] = e
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist, idx: r.index[v]})
	}

	return nil
}

// result assembles distances and reconstructed paths.
func (r *runner) result() *Result {
	res := &Result{
		Source:    r.options.Source,
		Distances: make(map[string]float64, len(r.order)),
		Paths:     make(map[string][]core.Edge, len(r.visited)),
	}
	for _, v := range r.order {
		if r.options.Target != "" && !r.visited[v] {
			continue
		}
		if !r.visited[v] {
			res.Distances[v] = math.Inf(1)
			continue
		}
		res.Distances[v] = r.dist[v]
		res.Paths[v] = r.pathTo(v)
	}

	return res
}

// pathTo walks predecessor edges back to the source.
func (r *runner) pathTo(v string) []core.Edge {
	var rev []core.Edge
	for v != r.options.Source {
		e := r.via[v]
		rev = append(rev, e)
		v = e.Start
	}
	path := make([]core.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}

	return path
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
	idx  int // insertion index, secondary key
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, idx).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
