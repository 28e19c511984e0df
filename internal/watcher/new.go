package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

const defaultDebounce = 300 * time.Millisecond

// New watches filePath for writes. Its directory is watched rather than the
// file so that editors replacing the file by rename are still seen.
func New(filePath string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &implWatcher{
		path:     abs,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		debounce: debounce,
	}, nil
}
