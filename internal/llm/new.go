package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
)

// New creates the Generator selected by cfg.Provider. Nothing is contacted
// until Load or the first Generate.
func New(cfg config.LLMConfig, log logger.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return newOpenAI(cfg, log), nil
	case config.ProviderGemini:
		return newGemini(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
