// Package layout computes 2D node coordinates for a core.Graph.
//
// Four interchangeable strategies implement Strategy:
//
//   - Random:             uniform coordinates in the unit square; no edges needed.
//   - StressMinimization: Kamada-Kawai style embedding of graph distances
//     (classical MDS seed via gonum, then stress majorization).
//   - ForceDirected:      fixed-iteration attraction (1/d), repulsion (1/d²) and
//     gravity simulation with force clamping and centroid re-centring.
//   - SpringCharge:       damped Coulomb/Hooke simulation clamped to a viewport,
//     returned in screen orientation (origin top-left, y down).
//
// Every strategy is a plain config struct whose zero fields resolve to the
// documented defaults, so layout.ForceDirected{} is ready to use. New(kind)
// and ParseKind(name) select a strategy at run time.
//
// Preconditions are checked before any simulation work:
//
//   - ErrNilGraph, ErrEmptyGraph for every strategy.
//   - ErrNoEdges for the stress and force-based strategies.
//   - ErrBadConfig for negative, NaN or out-of-range parameters.
//
// Compute checks ctx once per iteration and returns ctx.Err() without a
// partial layout. No strategy mutates the graph; Layout.Apply writes the
// result back through core.(*Graph).ApplyPositions.
//
// Disconnected graphs: StressMinimization substitutes 1.5× the largest finite
// graph distance for pairs in different components. Check bfs.IsConnected
// first when that approximation is not acceptable.
package layout
