// Package graphlab is an in-memory toolkit for undirected weighted graphs:
// building them, finding shortest paths and spanning trees, laying them out
// in the plane and drawing them in a terminal.
//
// The module is organised as small packages around one graph type:
//
//	core/          thread-safe Graph with nodes, edges, colours and positions
//	builder/       deterministic generators: path, cycle, star, wheel, grid, random
//	bfs/           breadth-first traversal and connected components
//	dijkstra/      single-source shortest paths with tie-breaking by insertion order
//	prim_kruskal/  minimum spanning trees and forests
//	matrix/        weight/adjacency matrix import and export, all-pairs distances
//	layout/        random, stress, force-directed and spring-charge placement
//	render/        box-drawing terminal renderer with lipgloss colours
//	codec/         JSON and YAML graph documents
//	store/         named graphs in SQLite
//	cmd/graphlab   the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a 4-cycle with four nodes and four edges.
//
//	go install github.com/katalvlaran/graphlab/cmd/graphlab@latest
package graphlab
