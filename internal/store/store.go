// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists accepted prospects in a SQLite ledger so repeated
// collection runs extend the list instead of regenerating it. The ledger
// keys rows by normalized company name; the collect command pre-seeds its
// dedup set from here.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/prospect-engine/internal/screen"
	"github.com/pdiddy/prospect-engine/pkg/types"
)

const dbFile = "prospects.db"

// Store manages the prospect ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at dir/prospects.db, creating the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "store"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS prospects (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			segment TEXT,
			region TEXT,
			justification TEXT,
			website TEXT,
			priority TEXT,
			collected_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prospects_segment ON prospects(segment)`,
		`CREATE INDEX IF NOT EXISTS idx_prospects_priority ON prospects(priority)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Keys returns every normalized name key in the ledger, for pre-seeding the
// collection dedup set.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM prospects`)
	if err != nil {
		return nil, fmt.Errorf("querying keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Append inserts prospects into the ledger, keyed by normalized name.
// Already-known names are ignored. Returns the number of rows inserted.
func (s *Store) Append(ctx context.Context, prospects []types.Prospect) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO prospects (key, name, segment, region, justification, website, priority, collected_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	inserted := 0
	for _, p := range prospects {
		key := screen.NormalizeKey(p.Name)
		if key == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx,
			key, p.Name, p.Segment, p.Region, p.Justification, p.Website, string(p.Priority), now)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", p.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return inserted, nil
}

// All returns every ledger prospect in insertion order.
func (s *Store) All(ctx context.Context) ([]types.Prospect, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, segment, region, justification, website, priority
		 FROM prospects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying prospects: %w", err)
	}
	defer rows.Close()

	var out []types.Prospect
	for rows.Next() {
		var p types.Prospect
		var priority string
		if err := rows.Scan(&p.Name, &p.Segment, &p.Region, &p.Justification, &p.Website, &priority); err != nil {
			return nil, fmt.Errorf("scanning prospect: %w", err)
		}
		p.Priority = types.PriorityTier(priority)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Stats summarizes the ledger contents.
type Stats struct {
	Total      int
	BySegment  map[string]int
	ByPriority map[string]int
}

// Summarize computes ledger statistics.
func (s *Store) Summarize(ctx context.Context) (Stats, error) {
	stats := Stats{
		BySegment:  make(map[string]int),
		ByPriority: make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM prospects`).Scan(&stats.Total); err != nil {
		return stats, fmt.Errorf("counting prospects: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT segment, count(*) FROM prospects GROUP BY segment`)
	if err != nil {
		return stats, fmt.Errorf("counting by segment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var seg string
		var n int
		if err := rows.Scan(&seg, &n); err != nil {
			return stats, fmt.Errorf("scanning segment count: %w", err)
		}
		stats.BySegment[seg] = n
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	prows, err := s.db.QueryContext(ctx,
		`SELECT priority, count(*) FROM prospects GROUP BY priority`)
	if err != nil {
		return stats, fmt.Errorf("counting by priority: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var pri string
		var n int
		if err := prows.Scan(&pri, &n); err != nil {
			return stats, fmt.Errorf("scanning priority count: %w", err)
		}
		stats.ByPriority[pri] = n
	}
	return stats, prows.Err()
}
