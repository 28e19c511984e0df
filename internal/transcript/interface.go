package transcript

import (
	"context"
	"time"
)

// Record is a resolved transcript for one video reference.
type Record struct {
	VideoRef string
	Key      string
	Path     string
	Text     string
	// Cached is true when the transcript already existed on disk.
	Cached bool
}

// Entry describes a transcript file found in the store.
type Entry struct {
	Key     string
	Path    string
	Size    int64
	ModTime time.Time
}

// Cache maps video references to transcript files, transcribing on a miss.
type Cache interface {
	// EnsureStoreExists creates the cache directory if needed.
	EnsureStoreExists() error
	// Lookup returns the cached record without transcribing.
	Lookup(ctx context.Context, videoRef string) (Record, bool, error)
	// GetOrCreate returns the cached record or transcribes and persists it.
	GetOrCreate(ctx context.Context, videoRef string) (Record, error)
	List(ctx context.Context) ([]Entry, error)
	// Remove deletes the transcript for videoRef and reports whether it existed.
	Remove(ctx context.Context, videoRef string) (bool, error)
	Dir() string
}
