package responder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/vidprompt/internal/apperr"
	"github.com/nguyentantai21042004/vidprompt/internal/llm"
)

const promptTemplate = "Video Transcription: %s\n\nPrompt: %s\n\nProvide a detailed response:"

// ComposePrompt builds the combined prompt. The transcript is not truncated;
// an oversized prompt is for the model to reject.
func ComposePrompt(transcript, prompt string) string {
	return fmt.Sprintf(promptTemplate, transcript, prompt)
}

func (r *implResponder) Validate(videoRef, prompt string) error {
	if strings.TrimSpace(videoRef) == "" {
		return apperr.Validation("validate prompt request", "Please select a video file.")
	}
	if strings.TrimSpace(prompt) == "" {
		return apperr.Validation("validate prompt request", "Please enter a prompt.")
	}
	return nil
}

func (r *implResponder) Respond(ctx context.Context, transcript, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.Validation("respond", "Please enter a prompt.")
	}

	combined := ComposePrompt(transcript, prompt)
	params := r.Sampling()

	r.logger.Info(ctx, "Querying %s (%d chars, max %d tokens)", r.generator.Name(), len(combined), params.MaxNewTokens)
	startTime := time.Now()

	text, err := r.generator.Generate(ctx, combined, params)
	if err != nil {
		return "", apperr.Generation("generate response", err)
	}

	r.logger.Info(ctx, "Response received in %s", time.Since(startTime).Round(time.Millisecond))
	return text, nil
}

func (r *implResponder) Sampling() llm.SamplingParams {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sampling
}

func (r *implResponder) SetSampling(params llm.SamplingParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sampling = params
}
