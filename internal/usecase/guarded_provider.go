package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/repository"
	"studenthub-core/internal/metrics"
)

// GuardedProvider wraps a completion backend with a per-call timeout, metrics and logging.
// A failed call is reported once and never retried.
type GuardedProvider struct {
	inner    repository.Completer
	provider string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGuardedProvider wraps inner. A zero timeout leaves the caller's deadline in charge.
func NewGuardedProvider(inner repository.Completer, provider string, timeout time.Duration, logger *zap.Logger) *GuardedProvider {
	return &GuardedProvider{
		inner:    inner,
		provider: provider,
		timeout:  timeout,
		logger:   logger.With(zap.String("component", "completion"), zap.String("provider", provider)),
	}
}

func (g *GuardedProvider) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	// 1. Apply Timeout Layer
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	// 2. Single attempt
	start := time.Now()
	resp, err := g.inner.Complete(ctx, req)
	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(g.provider).Observe(elapsed.Seconds())

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(g.provider, outcome(err)).Inc()
		g.logger.Error("completion failed",
			zap.Duration("elapsed", elapsed),
			zap.Int("max_tokens", req.MaxTokens),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(g.provider, "ok").Inc()
	g.logger.Debug("completion finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("tokens", resp.TokenCount),
	)
	return resp, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, entity.ErrUpstreamUnavailable):
		return "unavailable"
	case errors.Is(err, entity.ErrUpstreamMalformed):
		return "malformed"
	default:
		return "error"
	}
}
