package core

import "context"

// Gateway defines the contract for durable store persistence.
// Adhering to this interface keeps the engine independent of where the
// blob actually lives (a file, a test double, a remote object store).
type Gateway interface {
	// Load reads the persisted store. It returns ErrNotFound when no blob
	// exists and a decode error when the blob cannot be parsed; the caller
	// decides how to recover (the Service falls back to the seeded default).
	Load(ctx context.Context) (*Store, error)

	// Save persists the full store, replacing any previous blob. Writes
	// are whole-blob and atomic; there are no partial or delta writes.
	Save(ctx context.Context, s *Store) error
}

// Watchable defines an optional Gateway extension for observing external
// changes to the persisted blob.
type Watchable interface {
	// Watch emits an event whenever the blob changes underneath us.
	Watch(ctx context.Context) (<-chan Event, error)
}
