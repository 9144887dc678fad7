package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"studenthub-core/internal/domain/entity"
)

// PerplexityClient talks to Perplexity's OpenAI-compatible chat completions endpoint.
type PerplexityClient struct {
	client openai.Client
	model  string
}

func NewPerplexityClient(apiKey, baseURL, model string, opts ...option.RequestOption) *PerplexityClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}, opts...)

	return &PerplexityClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (p *PerplexityClient) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	start := time.Now()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Instructions),
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", entity.ErrUpstreamMalformed)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty message content", entity.ErrUpstreamMalformed)
	}

	return &entity.Completion{
		Content:    content,
		Model:      resp.Model,
		TokenCount: int(resp.Usage.TotalTokens),
		Latency:    time.Since(start).Milliseconds(),
	}, nil
}

// classify keeps the SDK error in the chain. Failures to reach the endpoint or non-2xx
// statuses mean the call could not complete; anything else is a response we could not read.
func classify(err error) error {
	var apiErr *openai.Error
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr),
		errors.As(err, &netErr),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", entity.ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", entity.ErrUpstreamMalformed, err)
	}
}
