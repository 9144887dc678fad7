package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studenthub-core/internal/domain/entity"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, status int, body string, seen *capturedRequest, auth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if seen != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPerplexityClient_Complete(t *testing.T) {
	var seen capturedRequest
	var auth string
	srv := newTestServer(t, http.StatusOK, `{
		"id": "cmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "sonar",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "[{\"name\": \"IIT Bombay\"}]"}}],
		"usage": {"prompt_tokens": 40, "completion_tokens": 12, "total_tokens": 52}
	}`, &seen, &auth)

	c := NewPerplexityClient("pplx-key", srv.URL, "sonar")
	got, err := c.Complete(context.Background(), entity.CompletionRequest{
		Instructions: "Respond with JSON only.",
		Prompt:       "List the top 10 engineering colleges in India.",
		MaxTokens:    3000,
	})
	require.NoError(t, err)

	assert.Equal(t, `[{"name": "IIT Bombay"}]`, got.Content)
	assert.Equal(t, "sonar", got.Model)
	assert.Equal(t, 52, got.TokenCount)

	assert.Equal(t, "Bearer pplx-key", auth)
	assert.Equal(t, "sonar", seen.Model)
	assert.Equal(t, 3000, seen.MaxTokens)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Equal(t, "Respond with JSON only.", seen.Messages[0].Content)
	assert.Equal(t, "user", seen.Messages[1].Role)
	assert.Equal(t, "List the top 10 engineering colleges in India.", seen.Messages[1].Content)
}

func TestPerplexityClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "upstream 500",
			status:  http.StatusInternalServerError,
			body:    `{"error": {"message": "boom"}}`,
			wantErr: entity.ErrUpstreamUnavailable,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error": {"message": "bad key"}}`,
			wantErr: entity.ErrUpstreamUnavailable,
		},
		{
			name:    "gateway html with 200",
			status:  http.StatusOK,
			body:    `<html>gateway page</html>`,
			wantErr: entity.ErrUpstreamMalformed,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"id": "x", "object": "chat.completion", "model": "sonar", "choices": []}`,
			wantErr: entity.ErrUpstreamMalformed,
		},
		{
			name:    "empty content",
			status:  http.StatusOK,
			body:    `{"id": "x", "object": "chat.completion", "model": "sonar", "choices": [{"index": 0, "message": {"role": "assistant", "content": ""}}]}`,
			wantErr: entity.ErrUpstreamMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil, nil)

			c := NewPerplexityClient("k", srv.URL, "sonar")
			_, err := c.Complete(context.Background(), entity.CompletionRequest{Prompt: "x", MaxTokens: 10})
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == entity.ErrUpstreamMalformed {
				assert.NotErrorIs(t, err, entity.ErrUpstreamUnavailable)
			}
		})
	}
}

func TestPerplexityClient_StatusErrorKeepsCause(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{"error": {"message": "rate limited"}}`, nil, nil)

	c := NewPerplexityClient("k", srv.URL, "sonar")
	_, err := c.Complete(context.Background(), entity.CompletionRequest{Prompt: "x"})
	require.ErrorIs(t, err, entity.ErrUpstreamUnavailable)

	var apiErr *openai.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestPerplexityClient_Canceled(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewPerplexityClient("k", srv.URL, "sonar")
	_, err := c.Complete(ctx, entity.CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}

func TestPerplexityClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewPerplexityClient("k", url, "sonar")
	_, err := c.Complete(context.Background(), entity.CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}
