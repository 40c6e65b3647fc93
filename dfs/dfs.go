// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. If opts include WithFullTraversal,
// it covers all components; otherwise it starts only from startID.
// Neighbors are explored in edge insertion order, so results are reproducible.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, ctx.Err(), or a wrapped hook error.
// On error the partial result is returned with Order cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	ids := g.NodeIDs()
	res := &DFSResult{
		Preorder: make([]string, 0, len(ids)),
		Order:    make([]string, 0, len(ids)),
		Depth:    make(map[string]int, len(ids)),
		Parent:   make(map[string]string, len(ids)),
		Visited:  make(map[string]bool, len(ids)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	roots := []string{startID}
	if dopts.FullTraversal {
		roots = ids
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		if err := walker.traverse(root, 0); err != nil {
			res.Order = nil
			return res, err
		}
	}

	return res, nil
}

// traverse visits node id at the given depth, recursing into unvisited neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	// 5. Explore each neighbor; self-loops lead back to id and are skipped
	for _, nb := range nbs {
		if nb.ID == id || w.res.Visited[nb.ID] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.ID) {
			w.res.SkippedNeighbors++
			continue
		}
		// A depth-limited walk leaves deeper nodes unvisited.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb.ID] = id
		if err = w.traverse(nb.ID, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
