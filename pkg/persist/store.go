package persist

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no snapshot exists for a key.
var ErrNotFound = errors.New("persist: snapshot not found")

// Store is a key-addressed blob store for state snapshots.
type Store interface {
	// Save writes data under key, overwriting any previous snapshot.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the last snapshot saved under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the snapshot for key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
