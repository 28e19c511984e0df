package responder

import (
	"sync"

	"github.com/nguyentantai21042004/vidprompt/internal/llm"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

type implResponder struct {
	generator llm.Generator
	logger    logger.Logger

	mu       sync.RWMutex
	sampling llm.SamplingParams
}

// New creates a Responder that generates with gen using the given sampling params.
func New(gen llm.Generator, sampling llm.SamplingParams, log logger.Logger) Responder {
	return &implResponder{
		generator: gen,
		logger:    log,
		sampling:  sampling,
	}
}
