// Package storage provides the document store behind the study ledger.
// Each persisted document is an opaque JSON string addressed by key; the
// ledger owns the schema of what it stores.
package storage

import "context"

// Store is the port every ledger component depends on. Implementations
// must treat Set as a whole-document replace.
type Store interface {
	// Get returns the document for key. The second return is false when
	// the key has never been written (or was removed).
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the document for key.
	Set(ctx context.Context, key string, value string) error
	// Remove deletes the document for key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
	Close() error
}
