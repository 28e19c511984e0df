package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

func startWatcher(t *testing.T, path string, handler EventHandler) {
	t.Helper()

	w, err := New(path, handler, logger.Nop(), 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		w.Stop()
	})
}

func TestWatcherCallsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 10)
	startWatcher(t, path, func(ctx context.Context, filePath string) error {
		calls <- filePath
		return nil
	})

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-calls:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("handler path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 10)
	startWatcher(t, path, func(ctx context.Context, filePath string) error {
		calls <- filePath
		return nil
	})

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-calls:
		t.Errorf("handler called for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.yaml")
	if _, err := New(path, nil, logger.Nop(), 0); err == nil {
		t.Error("expected error when the directory does not exist")
	}
}
