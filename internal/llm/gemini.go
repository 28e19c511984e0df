package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/vidprompt/internal/config"
	"github.com/nguyentantai21042004/vidprompt/internal/logger"
	"github.com/nguyentantai21042004/vidprompt/pkg/handle"
)

type implGemini struct {
	cfg    config.LLMConfig
	logger logger.Logger
	client *handle.Handle[*genai.Client]
}

func newGemini(cfg config.LLMConfig, log logger.Logger) *implGemini {
	g := &implGemini{cfg: cfg, logger: log}
	g.client = handle.New(g.connect, nil)
	return g
}

func (g *implGemini) connect(ctx context.Context) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  g.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	g.logger.Info(ctx, "Gemini client ready: model=%s", g.cfg.Model)
	return client, nil
}

func (g *implGemini) Name() string {
	return "gemini:" + g.cfg.Model
}

func (g *implGemini) Load(ctx context.Context) error {
	return g.client.Load(ctx)
}

func (g *implGemini) Unload() error {
	return g.client.Unload()
}

func (g *implGemini) Generate(ctx context.Context, prompt string, params SamplingParams) (string, error) {
	client, err := g.client.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load model client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), geminiConfig(params))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		if text := sb.String(); strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func geminiConfig(params SamplingParams) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if params.MaxNewTokens > 0 {
		cfg.MaxOutputTokens = int32(params.MaxNewTokens)
	}
	if params.Sample {
		cfg.Temperature = genai.Ptr(float32(params.Temperature))
		cfg.TopP = genai.Ptr(float32(params.TopP))
		cfg.TopK = genai.Ptr(float32(params.TopK))
	} else {
		cfg.Temperature = genai.Ptr(float32(0))
	}
	return cfg
}
