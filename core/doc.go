// Package core provides the graph model shared by every algorithm in graphlab:
// an in-memory, undirected, weighted graph with labeled nodes.
//
// The Graph G = (V,E) keeps these invariants at all times:
//
//   - Node IDs are unique and non-empty (whitespace-only IDs are rejected).
//   - Edges only reference existing nodes; removing a node removes its edges.
//   - At most one edge per unordered pair: (a,b) and (b,a) are the same edge.
//   - Self-loops are allowed (one per node).
//
// Every mutation is atomic from the caller's perspective: a failing call
// leaves the graph unchanged.
//
// Why insertion order?
//
//   - Nodes(), NodeIDs(), Edges() and Neighbors() enumerate in insertion order,
//     so algorithms that need "an arbitrary start node" (Prim) or a stable node
//     indexing (layouts) are reproducible run to run.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id, label, color string) error        // O(1)
//	RemoveNode(id string) error                   // O(deg(v)+V)
//	HasNode(id string) bool                       // O(1)
//	Node(id string) (Node, error)                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(start, end string, w float64, color string) error // O(1)
//	RemoveEdge(start, end string) error           // O(1)
//	HasEdge(a, b string) bool                     // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)      // O(d·log d)
//	IncidentEdges(id string) ([]Edge, error)      // O(d·log d)
//	Nodes() []Node / NodeIDs() []string           // O(V)
//	Edges() []Edge                                // O(E·log E)
//
//	// Positions (written back by layout callers)
//	SetPosition(id string, p Position) error
//	ApplyPositions(map[string]Position) error     // all-or-nothing
//
//	// Maintenance
//	Clear()  Clone()  Stats()
//
//	// Persistence contract
//	Snapshot() Snapshot
//	FromSnapshot(Snapshot) (*Graph, error)
//	Load(Snapshot) error                          // atomic replace
//
// Errors:
//
//	ErrEmptyNodeID     – empty or whitespace-only node ID
//	ErrDuplicateNode   – node ID already present
//	ErrDuplicateEdge   – edge already present in either orientation
//	ErrMissingEndpoint – edge references an absent node
//	ErrNodeNotFound    – node lookup/removal on an absent node
//	ErrEdgeNotFound    – edge lookup/removal on an absent edge
//	ErrBadWeight       – NaN weight
//
// Concurrency: each call takes the graph's RWMutex, so single operations are
// safe from multiple goroutines. A computation (path, MST, layout) reads the
// graph through several calls; keep writers out for its duration.
//
// The package never logs and never panics.
package core
