package llm

import "github.com/nguyentantai21042004/vidprompt/internal/config"

// SamplingParams are the decoding settings sent with every request.
type SamplingParams struct {
	MaxNewTokens int
	Temperature  float64
	TopK         int
	TopP         float64
	// Sample=false asks for greedy decoding.
	Sample bool
}

// DefaultSampling matches the values the prompt flow has always used.
func DefaultSampling() SamplingParams {
	return SamplingParams{
		MaxNewTokens: 512,
		Temperature:  0.8,
		TopK:         50,
		TopP:         0.95,
		Sample:       true,
	}
}

// SamplingFromConfig reads sampling params from a validated config.
func SamplingFromConfig(cfg config.LLMConfig) SamplingParams {
	p := SamplingParams{
		MaxNewTokens: cfg.MaxNewTokens,
		Temperature:  cfg.Temperature,
		TopK:         cfg.TopK,
		TopP:         cfg.TopP,
		Sample:       true,
	}
	if cfg.Sampling != nil {
		p.Sample = *cfg.Sampling
	}
	return p
}
