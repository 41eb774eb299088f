package repository

import "context"

// KeyValue is one entry from the state store.
type KeyValue struct {
	Key   string
	Value string
}

// StateStore provides read-only access to the key-value state table.
// Values are UTF-8 text holding JSON documents.
type StateStore interface {
	// Get returns the value stored under an exact key.
	Get(ctx context.Context, key string) (string, error)
	// ScanPrefix returns every entry whose key starts with prefix, in
	// table order.
	ScanPrefix(ctx context.Context, prefix string) ([]KeyValue, error)
	Close() error
}

// StateOpener opens a scoped store connection for one extraction run.
// The caller owns the returned store and must close it.
type StateOpener interface {
	Open(ctx context.Context) (StateStore, error)
}
