package repository

import "errors"

var (
	// ErrNotFound is returned when a requested key doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrStoreNotFound is returned when the state database file is missing
	ErrStoreNotFound = errors.New("state store not found")
)
