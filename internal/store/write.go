package store

import (
	"context"
	"fmt"

	"github.com/roach88/relalg/internal/ir"
)

// Record is one stored document.
type Record struct {
	Hash      string
	Name      string
	Backend   string
	NodeCount int
	Document  string
	Seq       int64
}

// WritePlan stores a document and returns the stored record.
//
// The hash is computed from the document when rec.Hash is empty and must
// match it otherwise. rec.Seq is ignored: the store assigns the next logical
// clock value. Writing a document that is already stored is a no-op that
// returns the existing record, including its original seq, name and backend.
func (s *Store) WritePlan(ctx context.Context, rec Record) (Record, error) {
	if rec.Document == "" {
		return Record{}, fmt.Errorf("write plan %q: empty document", rec.Name)
	}
	hash := ir.HashDocument([]byte(rec.Document))
	if rec.Hash == "" {
		rec.Hash = hash
	} else if rec.Hash != hash {
		return Record{}, fmt.Errorf("write plan %q: hash %s does not match document hash %s", rec.Name, rec.Hash, hash)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("write plan: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	// Next seq is computed inside the insert so it is atomic with it.
	result, err := tx.ExecContext(ctx, `
		INSERT INTO plans (hash, name, backend, node_count, document, seq)
		SELECT ?, ?, ?, ?, ?, COALESCE(MAX(seq), 0) + 1 FROM plans
		WHERE 1
		ON CONFLICT(hash) DO NOTHING
	`,
		rec.Hash,
		rec.Name,
		rec.Backend,
		rec.NodeCount,
		rec.Document,
	)
	if err != nil {
		return Record{}, fmt.Errorf("write plan: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return Record{}, fmt.Errorf("write plan: rows affected: %w", err)
	}

	stored, err := scanRecord(tx.QueryRowContext(ctx, selectRecord+` WHERE hash = ?`, rec.Hash))
	if err != nil {
		return Record{}, fmt.Errorf("write plan: read back: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("write plan: commit: %w", err)
	}

	if rows == 0 && stored.Document != rec.Document {
		// Same hash, different bytes: the hash function or the database is broken.
		return Record{}, fmt.Errorf("write plan: stored document for %s differs from input", rec.Hash)
	}

	s.cache.Store(stored.Hash, stored)
	return stored, nil
}
