// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// ErrInvalidGraph indicates that a nil graph was passed.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. Only returned by Compute when
// MSTOptions.RequireSpanning is set; Prim and Kruskal themselves never fail on it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Prim from the first node).
//
// Fields:
//
//	Method          string — one of MethodPrim or MethodKruskal.
//	Root            string — start node ID for Prim; "" means the first inserted node.
//	RequireSpanning bool   — fail with ErrDisconnected unless the tree covers every node.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(E log E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root string

	// RequireSpanning turns a partial tree (or forest) into ErrDisconnected.
	RequireSpanning bool
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireSpanning makes Compute reject graphs with more than one component.
func WithRequireSpanning() Option {
	return func(opts *MSTOptions) {
		opts.RequireSpanning = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim by default:
//
//	– Method          = MethodPrim
//	– Root            = "" (first inserted node)
//	– RequireSpanning = false
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, WithRoot(opts.Root)).
//	– Otherwise:                        returns ErrUnknownMethod.
//
// With opts.RequireSpanning, a result with fewer than |V|-1 edges yields ErrDisconnected.
//
// Returns:
//
//	[]core.Edge — slice of edges in MST (empty if graph has at most one node).
//	float64     — total weight of MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	var (
		edges []core.Edge
		total float64
		err   error
	)
	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		edges, total, err = Kruskal(graph)
	case MethodPrim:
		edges, total, err = Prim(graph, WithRoot(opts.Root))
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
	if err != nil {
		return nil, 0, err
	}

	if opts.RequireSpanning {
		if n := graph.NodeCount(); n > 1 && len(edges) < n-1 {
			return nil, 0, fmt.Errorf("%w: %d of %d nodes spanned", ErrDisconnected, len(edges)+1, n)
		}
	}

	return edges, total, nil
}
