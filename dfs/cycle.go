// Package dfs implements cycle detection for undirected core.Graphs.
// DetectCycles walks every component with three-color marking and turns each
// back edge into one cycle, which yields a fundamental cycle basis: its size
// is E - V + C, where C is the number of components. Self-loops are cycles of
// length one. Each cycle is rotated to a canonical form via Booth's algorithm,
// and the final list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = average cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/graphlab/core"
)

// DetectCycles reports whether g contains a cycle and lists one closed cycle
// [v0, v1, ..., v0] per back edge of the DFS forest. A graph is a forest
// exactly when it reports false.
// A nil graph is treated as cycle-free.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	// 1) Visitation state per node and the current DFS path.
	ids := g.NodeIDs()
	state := make(map[string]int, len(ids))
	path := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	var cycles [][]string

	// 2) Launch DFS from each unvisited node, in insertion order.
	for _, v := range ids {
		if state[v] != White {
			continue
		}
		if err := dfsVisit(g, v, "", state, &path, seen, &cycles); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	// 3) Sort cycles by their comma-joined signature.
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// IsForest reports whether g has no cycles (self-loops count as cycles).
func IsForest(g *core.Graph) (bool, error) {
	has, _, err := DetectCycles(g)

	return !has, err
}

// dfsVisit performs recursive DFS from id, skipping the tree edge back to
// parent. Every Gray neighbor reached over another edge closes a cycle.
// core.Graph rejects parallel edges, so skipping parent by ID is exact.
func dfsVisit(
	g *core.Graph,
	id, parent string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	// 1) Mark id Gray and push it onto the path.
	state[id] = Gray
	*path = append(*path, id)

	nbs, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	// 2) Explore neighbors.
	for _, nb := range nbs {
		if nb.ID == parent {
			continue
		}
		switch state[nb.ID] {
		case White:
			if err = dfsVisit(g, nb.ID, id, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(nb.ID, *path, seen, cycles)
		}
	}

	// 3) Backtrack.
	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts the cycle path[idx(start):] + start, canonicalizes it
// and appends it to cycles unless an equal cycle was already recorded.
func recordCycle(start string, path []string, seen map[string]struct{}, cycles *[][]string) {
	idx := slices.Index(path, start)
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical returns the closed cycle starting at its lexicographically
// smallest rotation, in whichever direction is smaller, and its signature.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rev := slices.Clone(base)
	slices.Reverse(rev)
	rotF := MinimalRotation(base)
	rotB := MinimalRotation(rev)
	picker := rotF
	if slices.Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
