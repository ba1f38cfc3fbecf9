package core

import "context"

// Store defines the contract for reading and writing graph files.
// Adhering to this interface keeps the core independent of the storage
// mechanism; the service never touches the filesystem directly.
type Store interface {
	// Read returns the whole content of the file at path.
	// A missing file is not an error: exists is false and content empty.
	Read(ctx context.Context, path string) (content string, exists bool, err error)

	// Apply performs op on the file at path and flushes it to stable storage
	// before returning. OpSkip must not touch the filesystem.
	Apply(ctx context.Context, path string, op FileOp) error
}

// Watchable defines an interface for stores that can report changes.
type Watchable interface {
	// Watch emits an Event for every change to a file matching pattern.
	// The pattern is a doublestar glob relative to the store root.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
