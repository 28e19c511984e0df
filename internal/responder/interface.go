package responder

import (
	"context"

	"github.com/nguyentantai21042004/vidprompt/internal/llm"
)

// Responder answers a free-text prompt about a video transcript.
type Responder interface {
	// Validate checks the inputs of the prompt flow before any model runs.
	Validate(videoRef, prompt string) error
	// Respond composes the combined prompt and asks the model for an answer.
	Respond(ctx context.Context, transcript, prompt string) (string, error)
	Sampling() llm.SamplingParams
	SetSampling(params llm.SamplingParams)
}
