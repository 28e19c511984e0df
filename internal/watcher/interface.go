package watcher

import "context"

// Watcher reports changes to a single file.
type Watcher interface {
	// Start blocks until ctx is done or the underlying watcher fails.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the watched path after it changed.
type EventHandler func(ctx context.Context, filePath string) error
