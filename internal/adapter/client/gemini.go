package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"studenthub-core/internal/domain/entity"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient uses the Gemini API when apiKey is set and Vertex AI otherwise.
func NewGenAIClient(ctx context.Context, apiKey, projectID, location string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	}
	if apiKey != "" {
		cfg = &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
	}
	return genai.NewClient(ctx, cfg)
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiClient) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	start := time.Now()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.Instructions, genai.RoleUser),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamUnavailable, err)
	}

	content := result.Text()
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty candidate text", entity.ErrUpstreamMalformed)
	}

	var tokens int
	if result.UsageMetadata != nil {
		tokens = int(result.UsageMetadata.TotalTokenCount)
	}

	return &entity.Completion{
		Content:    content,
		Model:      g.model,
		TokenCount: tokens,
		Latency:    time.Since(start).Milliseconds(),
	}, nil
}
