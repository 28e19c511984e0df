package transcript

import (
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/internal/transcriber"
)

type implCache struct {
	dir         string
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a Cache storing transcripts under dir. The directory is created
// lazily on first use.
func New(dir string, tr transcriber.Transcriber, log logger.Logger) Cache {
	return &implCache{
		dir:         dir,
		transcriber: tr,
		logger:      log,
	}
}
