// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes of an undirected graph with non-negative weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key keeps up to E heap entries)
//
// Options:
//
//	– Source:      ID of the starting node (required).
//	– Target:      optional destination; the search stops once it is settled.
//	– MaxDistance: optional cap; nodes farther than this stay unreached.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source or target is not in the graph.
//	– ErrNegativeWeight  if any edge has a negative weight.
//	– ErrNoPath          if the target cannot be reached.
//	– ErrBadMaxDistance  if MaxDistance < 0 (raised by WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound is core.ErrNodeNotFound; source/target lookups wrap it.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// Target      – optional destination node ID; "" means all-targets mode.
// MaxDistance – cap on explored distances. Default +Inf (no cap).
type Options struct {
	Source      string
	Target      string
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. Must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target restricts the run to a single destination.
// The search stops as soon as the target's distance is final.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed it keep distance +Inf.
// Panics on a negative value (option constructors validate eagerly).
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for the given source with no target and no cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}

// Result holds the outcome of an all-targets (or early-stopped) run.
//
// Distances maps every node of the graph to its shortest distance from Source,
// math.Inf(1) when unreachable. In target mode only nodes settled before the
// target are present.
//
// Paths maps every reachable node to the edges of its shortest path, in order
// and oriented away from Source. Unreachable nodes are absent; Source maps to
// an empty path.
type Result struct {
	Source    string
	Distances map[string]float64
	Paths     map[string][]core.Edge
}

// Reachable reports whether id was reached from the source.
func (r *Result) Reachable(id string) bool {
	_, ok := r.Paths[id]

	return ok
}

// PathTo returns the distance and path to id, or ErrNoPath.
func (r *Result) PathTo(id string) (float64, []core.Edge, error) {
	path, ok := r.Paths[id]
	if !ok {
		return math.Inf(1), nil, ErrNoPath
	}

	return r.Distances[id], path, nil
}

// Nodes returns the path as a node sequence starting at the source.
// It returns nil when id is unreachable.
func (r *Result) Nodes(id string) []string {
	path, ok := r.Paths[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(path)+1)
	out = append(out, r.Source)
	for _, e := range path {
		out = append(out, e.End)
	}

	return out
}
