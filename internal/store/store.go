// Package store provides the collection storage contract and its SQLite
// implementation.
//
// Each collection is persisted as a single serialized blob under a fixed
// key: a mutation reads the whole collection, transforms it in memory and
// writes the whole collection back. Last write wins; there is no locking
// and no merge strategy.
package store

import "context"

// Keys for the two stored collections.
const (
	SessionsKey = "dev_study_tasks"
	ProjectsKey = "dev_study_todos"
)

// Store defines the blob storage interface consumed by the ledgers.
type Store interface {
	// Load returns the blob stored under key. ok is false when the key
	// has never been written.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	// Save overwrites the blob under key.
	Save(ctx context.Context, key, value string) error

	// Close closes the store.
	Close() error
}
