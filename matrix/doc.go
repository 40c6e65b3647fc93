// Package matrix converts between core.Graph and square weight matrices.
//
// The package provides:
//
//   - FromWeightMatrix / FromAdjacencyMatrix: build an undirected graph from a
//     symmetric n×n matrix (0 and ±Inf mean "no edge", the diagonal gives
//     self-loops, adjacency import forces weight 1).
//   - ToWeightMatrix / ToDense: export in node insertion order, as plain
//     slices or a gonum *mat.Dense.
//   - FromDense: import any gonum mat.Matrix.
//   - ParseWeightMatrix / WriteWeightMatrix: a plain text form with "-" for
//     absent edges, used by the CLI.
//   - DistanceMatrix: all-pairs shortest path distances (Floyd–Warshall) as a
//     gonum *mat.Dense, +Inf for unreachable pairs.
//
// Matrices cost O(V²) memory; they suit the small graphs a drawing tool edits.
package matrix
