package action

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/internal/responder"
	"github.com/nguyentantai21042004/vidprompt/internal/transcript"
)

type implRunner struct {
	cache     transcript.Cache
	responder responder.Responder
	logger    logger.Logger
	onState   StateFunc
	sem       *semaphore
	wg        sync.WaitGroup

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// New creates a Runner. onState may be nil.
func New(cache transcript.Cache, resp responder.Responder, log logger.Logger, onState StateFunc) Runner {
	return &implRunner{
		cache:     cache,
		responder: resp,
		logger:    log,
		onState:   onState,
		sem:       newSemaphore(1),
		state:     Idle,
	}
}
