// Package handle provides an explicitly owned, lazily loaded resource such as
// a speech or language model.
package handle

import (
	"context"
	"sync"
)

// LoadFunc opens the underlying resource.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// ReleaseFunc frees a resource returned by LoadFunc.
type ReleaseFunc[T any] func(T) error

// Handle owns a resource that is loaded on first use or by an explicit Load,
// and released by Unload. A failed load leaves the handle unloaded so the next
// call tries again.
type Handle[T any] struct {
	mu      sync.Mutex
	load    LoadFunc[T]
	release ReleaseFunc[T]
	value   T
	loaded  bool
}

// New creates an unloaded handle. release may be nil.
func New[T any](load LoadFunc[T], release ReleaseFunc[T]) *Handle[T] {
	return &Handle[T]{load: load, release: release}
}

// Load opens the resource if it is not open yet.
func (h *Handle[T]) Load(ctx context.Context) error {
	_, err := h.Get(ctx)
	return err
}

// Get returns the resource, loading it first if needed.
func (h *Handle[T]) Get(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded {
		return h.value, nil
	}

	v, err := h.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	h.value = v
	h.loaded = true
	return v, nil
}

// Loaded reports whether the resource is currently open.
func (h *Handle[T]) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loaded
}

// Unload releases the resource. Unloading an unloaded handle is a no-op.
func (h *Handle[T]) Unload() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.loaded {
		return nil
	}

	v := h.value
	var zero T
	h.value = zero
	h.loaded = false

	if h.release == nil {
		return nil
	}
	return h.release(v)
}
