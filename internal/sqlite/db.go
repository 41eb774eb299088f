package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/ganot/cursor-recap/internal/repository"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}

// StateOpener opens read-only connections to a Cursor state database file.
// One connection is opened per extraction run and closed with the store.
type StateOpener struct {
	Path string
}

// Open implements repository.StateOpener.
func (o StateOpener) Open(ctx context.Context) (repository.StateStore, error) {
	if _, err := os.Stat(o.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", repository.ErrStoreNotFound, o.Path)
		}
		return nil, fmt.Errorf("failed to stat state store: %w", err)
	}

	db, err := New(fmt.Sprintf("file:%s?mode=ro", o.Path))
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	return NewStateRepository(db), nil
}
