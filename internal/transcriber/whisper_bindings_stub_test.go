//go:build !whispercpp

package transcriber

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

func TestBindingsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.Backend = config.WhisperBackendBindings

	exec := &fakeExecutor{}
	tr, err := New(cfg, exec, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v, want a transcriber that fails on use", err)
	}

	if err := tr.Load(context.Background()); !errors.Is(err, ErrBindingsDisabled) {
		t.Errorf("Load() error = %v, want ErrBindingsDisabled", err)
	}
	if _, err := tr.Transcribe(context.Background(), "/videos/talk.mp4"); !errors.Is(err, ErrBindingsDisabled) {
		t.Errorf("Transcribe() error = %v, want ErrBindingsDisabled", err)
	}
	if err := tr.Unload(); err != nil {
		t.Errorf("Unload() error = %v", err)
	}
	if len(exec.calls) != 0 {
		t.Errorf("no tool should run, got %v", exec.calls)
	}
}
