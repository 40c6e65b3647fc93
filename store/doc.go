// Package store keeps named graphs in a SQLite database (modernc.org/sqlite,
// pure Go, driver name "sqlite").
//
// Schema: one row per graph in "graphs", with "nodes" and "edges" rows that
// cascade on delete. Each row records its insertion sequence so Load restores
// the exact node and edge order that layout and MST tie-breaking depend on.
//
// Operations: Open, Save (replace), Load, List, Delete, SavePositions, Close.
// Missing graphs yield ErrGraphNotFound; stored content is rebuilt through
// core.FromSnapshot and therefore reports core errors for corrupt rows.
package store
