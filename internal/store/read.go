package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const selectRecord = `SELECT hash, name, backend, node_count, document, seq FROM plans`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	if err := row.Scan(&rec.Hash, &rec.Name, &rec.Backend, &rec.NodeCount, &rec.Document, &rec.Seq); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ReadPlan returns the record stored under hash, or ErrNotFound.
// Records are served from the cache after the first read.
func (s *Store) ReadPlan(ctx context.Context, hash string) (Record, error) {
	if rec, ok := s.cache.Load(hash); ok {
		return rec, nil
	}

	rec, err := scanRecord(s.db.QueryRowContext(ctx, selectRecord+` WHERE hash = ?`, hash))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("read plan %s: %w", hash, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read plan %s: %w", hash, err)
	}

	s.cache.Store(hash, rec)
	return rec, nil
}

// ListPlans returns every record ordered by seq ASC, hash COLLATE BINARY ASC.
// Returns an empty slice (not nil) for an empty store.
func (s *Store) ListPlans(ctx context.Context) ([]Record, error) {
	return s.list(ctx, selectRecord+`
		ORDER BY seq ASC, hash COLLATE BINARY ASC
	`)
}

// ListPlansByName returns the records stored under name, in ListPlans order.
func (s *Store) ListPlansByName(ctx context.Context, name string) ([]Record, error) {
	return s.list(ctx, selectRecord+`
		WHERE name = ?
		ORDER BY seq ASC, hash COLLATE BINARY ASC
	`, name)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	return records, nil
}
