// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: SQLite persistence of named graph snapshots.
// Policy:
//   - One graph per name; Save replaces the whole graph in a single transaction.
//   - Rows carry the insertion sequence, so Load restores node and edge order.
//   - Loading goes through core.FromSnapshot: stored data obeys core invariants.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/graphlab/core"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var (
	// ErrGraphNotFound indicates that no graph is stored under the given name.
	ErrGraphNotFound = errors.New("store: graph not found")

	// ErrEmptyName indicates an empty or whitespace-only graph name.
	ErrEmptyName = errors.New("store: graph name is empty")

	// ErrNilGraph indicates that Save received a nil graph.
	ErrNilGraph = errors.New("store: graph is nil")
)

// Info summarises one stored graph.
type Info struct {
	Name      string
	Nodes     int
	Edges     int
	UpdatedAt time.Time
}

// Store is a SQLite-backed graph repository. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// dataSource builds the SQLite URI for path; each segment is escaped so '?',
// '#' and '%' stay part of the file name.
func dataSource(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	q := url.Values{"_pragma": {"foreign_keys(1)", "busy_timeout(5000)"}}
	u := url.URL{Scheme: "file", Opaque: strings.Join(segs, "/"), RawQuery: q.Encode()}

	return u.String()
}

// Open opens (creating if needed) the database at path and applies the schema.
// MemoryPath gives a throwaway database bound to a single connection.
func Open(path string) (*Store, error) {
	db, err := sql.Open(DriverName, dataSource(path))
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if path == MemoryPath {
		// Every new connection would see a fresh empty database.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate %s: %w", path, err)
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS graphs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS nodes (
		graph_id INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		label TEXT NOT NULL,
		color TEXT NOT NULL,
		x REAL NOT NULL DEFAULT 0,
		y REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (graph_id, id),
		FOREIGN KEY (graph_id) REFERENCES graphs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS edges (
		graph_id INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		start_id TEXT NOT NULL,
		end_id TEXT NOT NULL,
		weight REAL NOT NULL,
		color TEXT NOT NULL,
		PRIMARY KEY (graph_id, seq),
		FOREIGN KEY (graph_id) REFERENCES graphs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_nodes_order ON nodes(graph_id, seq);
	`
	_, err := s.db.Exec(schema)

	return err
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	return nil
}

// Save stores g under name, replacing any graph already stored there.
func (s *Store) Save(ctx context.Context, name string, g *core.Graph) error {
	if err := checkName(name); err != nil {
		return err
	}
	if g == nil {
		return ErrNilGraph
	}
	snap := g.Snapshot()

	return s.inTx(ctx, func(tx *sql.Tx) error {
		// 1. Drop the previous version; rows cascade.
		if _, err := tx.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name); err != nil {
			return fmt.Errorf("delete previous: %w", err)
		}

		// 2. Graph row.
		res, err := tx.ExecContext(ctx,
			`INSERT INTO graphs (name, updated_at) VALUES (?, ?)`, name, s.now().UnixNano())
		if err != nil {
			return fmt.Errorf("insert graph: %w", err)
		}
		gid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("graph id: %w", err)
		}

		// 3. Nodes and edges in insertion order.
		nodeStmt, err := tx.PrepareContext(ctx,
			`INSERT INTO nodes (graph_id, seq, id, label, color, x, y) VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare nodes: %w", err)
		}
		defer nodeStmt.Close()
		for i, n := range snap.Nodes {
			if _, err := nodeStmt.ExecContext(ctx, gid, i, n.ID, n.Label, n.Color, n.Position.X, n.Position.Y); err != nil {
				return fmt.Errorf("insert node %q: %w", n.ID, err)
			}
		}

		edgeStmt, err := tx.PrepareContext(ctx,
			`INSERT INTO edges (graph_id, seq, start_id, end_id, weight, color) VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare edges: %w", err)
		}
		defer edgeStmt.Close()
		for i, e := range snap.Edges {
			if _, err := edgeStmt.ExecContext(ctx, gid, i, e.Start, e.End, e.Weight, e.Color); err != nil {
				return fmt.Errorf("insert edge %s—%s: %w", e.Start, e.End, err)
			}
		}

		return nil
	})
}

// Load rebuilds the graph stored under name.
func (s *Store) Load(ctx context.Context, name string) (*core.Graph, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	gid, err := s.graphID(ctx, s.db, name)
	if err != nil {
		return nil, err
	}

	var snap core.Snapshot

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, color, x, y FROM nodes WHERE graph_id = ? ORDER BY seq`, gid)
	if err != nil {
		return nil, fmt.Errorf("store: query nodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n core.NodeRecord
		if err := rows.Scan(&n.ID, &n.Label, &n.Color, &n.Position.X, &n.Position.Y); err != nil {
			return nil, fmt.Errorf("store: scan node: %w", err)
		}
		snap.Nodes = append(snap.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate nodes: %w", err)
	}

	edgeRows, err := s.db.QueryContext(ctx,
		`SELECT start_id, end_id, weight, color FROM edges WHERE graph_id = ? ORDER BY seq`, gid)
	if err != nil {
		return nil, fmt.Errorf("store: query edges: %w", err)
	}
	defer edgeRows.Close()
	for edgeRows.Next() {
		var e core.EdgeRecord
		if err := edgeRows.Scan(&e.Start, &e.End, &e.Weight, &e.Color); err != nil {
			return nil, fmt.Errorf("store: scan edge: %w", err)
		}
		snap.Edges = append(snap.Edges, e)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate edges: %w", err)
	}

	g, err := core.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("store: graph %q: %w", name, err)
	}

	return g, nil
}

// List returns every stored graph ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.name, g.updated_at,
			(SELECT COUNT(*) FROM nodes n WHERE n.graph_id = g.id),
			(SELECT COUNT(*) FROM edges e WHERE e.graph_id = g.id)
		FROM graphs g
		ORDER BY g.name
	`)
	if err != nil {
		return nil, fmt.Errorf("store: query graphs: %w", err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var (
			info    Info
			updated int64
		)
		if err := rows.Scan(&info.Name, &updated, &info.Nodes, &info.Edges); err != nil {
			return nil, fmt.Errorf("store: scan graph: %w", err)
		}
		info.UpdatedAt = time.Unix(0, updated)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate graphs: %w", err)
	}

	return out, nil
}

// Delete removes the graph stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return nil
}

// SavePositions writes layout coordinates onto a stored graph without
// rewriting its structure. Like core.(*Graph).ApplyPositions it is
// all-or-nothing: an unknown node ID aborts with core.ErrNodeNotFound.
func (s *Store) SavePositions(ctx context.Context, name string, positions map[string]core.Position) error {
	if err := checkName(name); err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		gid, err := s.graphID(ctx, tx, name)
		if err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `UPDATE nodes SET x = ?, y = ? WHERE graph_id = ? AND id = ?`)
		if err != nil {
			return fmt.Errorf("prepare: %w", err)
		}
		defer stmt.Close()

		for id, p := range positions {
			res, err := stmt.ExecContext(ctx, p.X, p.Y, gid, id)
			if err != nil {
				return fmt.Errorf("update %q: %w", id, err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return fmt.Errorf("update %q: %w", id, err)
			} else if n == 0 {
				return fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
			}
		}
		_, err = tx.ExecContext(ctx, `UPDATE graphs SET updated_at = ? WHERE id = ?`, s.now().UnixNano(), gid)

		return err
	})
}

// querier is the subset shared by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) graphID(ctx context.Context, q querier, name string) (int64, error) {
	var gid int64
	err := q.QueryRowContext(ctx, `SELECT id FROM graphs WHERE name = ?`, name).Scan(&gid)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("store: lookup %q: %w", name, err)
	}

	return gid, nil
}

// inTx runs fn in a transaction, committing on nil and rolling back otherwise.
// Sentinel errors from fn pass through unwrapped by the "store:" prefix.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, ErrGraphNotFound) || errors.Is(err, core.ErrNodeNotFound) {
			return err
		}
		return fmt.Errorf("store: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	return nil
}
