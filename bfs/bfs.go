// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// ignoring edge weights, with an optional visit hook, depth limiting,
// and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor
// in edge insertion order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr.ID] || !w.opts.FilterNeighbor(item.id, nbr.ID) {
			continue
		}
		w.enqueue(nbr.ID, nextDepth, item.id)
	}

	return nil
}
