package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/executor"
)

// New creates the Transcriber selected by cfg.Whisper.Backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Whisper.Backend {
	case config.WhisperBackendCLI, "":
		return newCLI(cfg, exec, log), nil
	case config.WhisperBackendBindings:
		return newBindings(cfg, exec, log)
	default:
		return nil, fmt.Errorf("unknown whisper backend %q", cfg.Whisper.Backend)
	}
}
