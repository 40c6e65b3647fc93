// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies for fixtures,
// benchmarks and the graphlab CLI "generate" command.
//
// A build is a list of Constructors applied to one fresh *core.Graph:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.RandomSparse(12, 0.3),
//	)
//
// Constructors:
//
//   - Path(n)            P_n, n ≥ 2
//   - Cycle(n)           C_n, n ≥ 3
//   - Star(n)            hub "Center" plus n-1 leaves, n ≥ 2
//   - Wheel(rim)         C_rim plus hub "Center" with rim spokes, rim ≥ 3
//   - Complete(n)        K_n, n ≥ 1
//   - Grid(rows, cols)   4-neighbour lattice with fixed "r,c" IDs
//   - RandomSparse(n, p) Erdős–Rényi G(n, p); needs WithSeed/WithRand when 0<p<1
//
// Options:
//
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs / WithPrefixIDs: node naming.
//   - WithSeed / WithRand: rng shared by stochastic constructors and weight sources.
//   - WithWeightFn / WithConstantWeight / WithUniformWeight / WithIntWeight: edge weights.
//   - WithColors: node and edge colours (core defaults otherwise).
//
// Nodes are labelled with their ID. Emission order of nodes and edges is fixed
// per constructor, so equal options yield equal graphs, including insertion order,
// which the layout and MST packages rely on for tie-breaking.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, and any
// core insertion error, all wrapped by ErrConstructFailed at the BuildGraph level.
// Option constructors panic on nil functions or invalid distribution bounds.
package builder
