//go:build !whispercpp

package transcriber

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
)

// ErrBindingsDisabled is returned when the binary was built without whisper.cpp.
var ErrBindingsDisabled = errors.New("whisper.cpp bindings are disabled in this build, rebuild with -tags whispercpp or set whisper.backend: cli")

// disabledBindings lets commands that never transcribe keep working.
type disabledBindings struct{}

func newBindings(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	return disabledBindings{}, nil
}

func (disabledBindings) Load(ctx context.Context) error { return ErrBindingsDisabled }
func (disabledBindings) Unload() error                  { return nil }

func (disabledBindings) Transcribe(ctx context.Context, videoPath string) (Result, error) {
	return Result{}, ErrBindingsDisabled
}
