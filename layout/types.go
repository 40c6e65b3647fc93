// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Layout result type, Strategy interface, Kind enum and sentinel errors.
// Determinism:
//   - Every strategy visits nodes in graph insertion order.
//   - Seeded strategies are reproducible for a fixed seed.
// Concurrency:
//   - Strategies are values with no mutable state; one value may serve
//     concurrent Compute calls on graphs that are not being mutated.

package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/graphlab/core"
)

// Sentinel errors returned by layout strategies.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("layout: graph is nil")

	// ErrEmptyGraph indicates that the graph has no nodes.
	ErrEmptyGraph = errors.New("layout: graph has no nodes")

	// ErrNoEdges indicates that a strategy driven by adjacency found no edges.
	ErrNoEdges = errors.New("layout: graph has no edges")

	// ErrBadConfig indicates an invalid strategy parameter.
	ErrBadConfig = errors.New("layout: invalid configuration")

	// ErrUnknownKind indicates that a strategy name could not be parsed.
	ErrUnknownKind = errors.New("layout: unknown strategy kind")
)

// Layout maps node IDs to 2D coordinates. It is recomputed per call and never
// stored inside the graph; use Apply to write it back.
type Layout map[string]core.Position

// Centroid returns the mean position, or the origin for an empty layout.
func (l Layout) Centroid() core.Position {
	if len(l) == 0 {
		return core.Position{}
	}
	var c core.Position
	for _, p := range l {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(l))

	return core.Position{X: c.X / n, Y: c.Y / n}
}

// Bounds returns the bounding box corners (min, max). Both are the origin for an empty layout.
func (l Layout) Bounds() (lo, hi core.Position) {
	if len(l) == 0 {
		return lo, hi
	}
	lo = core.Position{X: math.Inf(1), Y: math.Inf(1)}
	hi = core.Position{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range l {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}

	return lo, hi
}

// Finite reports whether every coordinate is a finite number.
func (l Layout) Finite() bool {
	for _, p := range l {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}

	return true
}

// Apply writes the layout back into node positions (all-or-nothing).
func (l Layout) Apply(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return g.ApplyPositions(l)
}

// Strategy computes a layout for a graph. Implementations never mutate g and
// check ctx once per iteration, returning ctx.Err() without a partial result.
type Strategy interface {
	Kind() Kind
	Compute(ctx context.Context, g *core.Graph) (Layout, error)
}

// Kind enumerates the built-in strategies.
type Kind int

const (
	// KindRandom places nodes uniformly at random in the unit square.
	KindRandom Kind = iota
	// KindStress minimizes stress between graph and Euclidean distances.
	KindStress
	// KindForceDirected runs the attraction/repulsion/gravity simulation.
	KindForceDirected
	// KindSpringCharge runs the damped Coulomb/Hooke simulation in a viewport.
	KindSpringCharge
)

var kindNames = [...]string{
	KindRandom:        "random",
	KindStress:        "stress",
	KindForceDirected: "force",
	KindSpringCharge:  "spring",
}

// String returns the canonical short name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind accepts canonical names and common aliases, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return KindRandom, nil
	case "stress", "stress-minimization", "kamada-kawai", "kk":
		return KindStress, nil
	case "force", "force-directed", "fd":
		return KindForceDirected, nil
	case "spring", "spring-charge", "physical":
		return KindSpringCharge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns the strategy for kind with default parameters.
func New(kind Kind) (Strategy, error) {
	switch kind {
	case KindRandom:
		return Random{}, nil
	case KindStress:
		return StressMinimization{}, nil
	case KindForceDirected:
		return ForceDirected{}, nil
	case KindSpringCharge:
		return SpringCharge{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// checkGraph applies the shared fail-fast preconditions.
func checkGraph(g *core.Graph, needEdges bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return ErrEmptyGraph
	}
	if needEdges && g.EdgeCount() == 0 {
		return ErrNoEdges
	}

	return nil
}

// badConfig formats a parameter violation.
func badConfig(field string, v float64) error {
	return fmt.Errorf("%w: %s=%g", ErrBadConfig, field, v)
}

// positive resolves a zero field to def and rejects negatives and NaN.
// Zero always means "use the default", never "off".
func positive(field string, v, def float64) (float64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v < 0:
		return 0, badConfig(field, v)
	case v == 0:
		return def, nil
	default:
		return v, nil
	}
}

// iterations resolves a zero count to def and rejects negatives.
func iterations(v, def int) (int, error) {
	switch {
	case v < 0:
		return 0, badConfig("Iterations", float64(v))
	case v == 0:
		return def, nil
	default:
		return v, nil
	}
}
