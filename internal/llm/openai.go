package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/handle"
)

// implOpenAI talks to any OpenAI-compatible chat endpoint: llama.cpp server,
// Ollama, vLLM, LM Studio.
type implOpenAI struct {
	cfg    config.LLMConfig
	logger logger.Logger
	client *handle.Handle[*openai.Client]
}

func newOpenAI(cfg config.LLMConfig, log logger.Logger) *implOpenAI {
	g := &implOpenAI{cfg: cfg, logger: log}
	g.client = handle.New(g.connect, nil)
	return g
}

func (g *implOpenAI) connect(ctx context.Context) (*openai.Client, error) {
	if g.cfg.BaseURL == "" {
		return nil, fmt.Errorf("llm.base_url is required")
	}

	// local servers ignore the key but the client insists on one
	apiKey := g.cfg.APIKey
	if apiKey == "" {
		apiKey = "local"
	}

	client := openai.NewClient(
		option.WithBaseURL(g.cfg.BaseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	g.logger.Info(ctx, "LLM client ready: %s model=%s", g.cfg.BaseURL, g.cfg.Model)
	return &client, nil
}

func (g *implOpenAI) Name() string {
	return "openai:" + g.cfg.Model
}

func (g *implOpenAI) Load(ctx context.Context) error {
	return g.client.Load(ctx)
}

func (g *implOpenAI) Unload() error {
	return g.client.Unload()
}

// Generate sends prompt as a single user message and returns the content of
// the last choice.
func (g *implOpenAI) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	client, err := g.client.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load model client: %w", err)
	}

	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if params.MaxNewTokens > 0 {
		req.MaxTokens = openai.Int(int64(params.MaxNewTokens))
	}

	var opts []option.RequestOption
	if params.Sample {
		req.Temperature = openai.Float(params.Temperature)
		req.TopP = openai.Float(params.TopP)
		// top_k is not part of the OpenAI schema; llama.cpp and vLLM read it
		opts = append(opts, option.WithJSONSet("top_k", params.TopK))
	} else {
		req.Temperature = openai.Float(0)
	}

	g.logger.Debug(ctx, "Chat completion: model=%s prompt=%d chars", g.cfg.Model, len(prompt))

	resp, err := client.Chat.Completions.New(ctx, req, opts...)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", g.Name())
	}

	content := resp.Choices[len(resp.Choices)-1].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty response from %s", g.Name())
	}
	return content, nil
}
