package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/cursor-recap/internal/repository"
)

// StateRepository implements repository.StateStore over the cursorDiskKV table
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get returns the value stored under an exact key.
func (r *StateRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM cursorDiskKV WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// ScanPrefix returns every entry whose key starts with prefix. Entries come
// back in rowid order so repeated scans see a stable sequence.
func (r *StateRepository) ScanPrefix(ctx context.Context, prefix string) ([]repository.KeyValue, error) {
	query := `SELECT key, value FROM cursorDiskKV WHERE key LIKE ? || '%' ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}
	defer rows.Close()

	var entries []repository.KeyValue
	for rows.Next() {
		var entry repository.KeyValue
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// Close releases the underlying connection.
func (r *StateRepository) Close() error {
	return r.db.Close()
}
