package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

type implWatcher struct {
	path     string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Start delivers one handler call per burst of changes to the watched file.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for changes", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug(ctx, "Config watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug(ctx, "Change detected: %s %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.handler(ctx, w.path); err != nil {
				w.logger.Error(ctx, "Failed to handle change of %s: %v", w.path, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// relevant keeps writes and creates of the watched file only.
func (w *implWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
