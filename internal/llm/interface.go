package llm

import "context"

// Generator produces text from a single prompt with a locally hosted (or
// remote) language model.
type Generator interface {
	Load(ctx context.Context) error
	Unload() error
	Generate(ctx context.Context, prompt string, params SamplingParams) (string, error)
	Name() string
}
