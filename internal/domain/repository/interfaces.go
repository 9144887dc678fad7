package repository

import (
	"context"
	"time"

	"studenthub-core/internal/domain/entity"
)

type Completer interface {
	Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error)
}

type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// IntentMatcher decides whether two differently worded queries ask for the same thing.
type IntentMatcher interface {
	IsMatch(ctx context.Context, userPrompt, cachedPrompt string) bool
}

type SearchCache interface {
	Search(ctx context.Context, vector []float32, threshold float32) (*entity.SearchResult, string, error)
	Save(ctx context.Context, query string, result *entity.SearchResult, vector []float32) error
}

// OTPStore binds a phone number to its latest challenge code until ttl elapses.
type OTPStore interface {
	Put(ctx context.Context, phone, code string, ttl time.Duration) error
	// Get returns ok=false when no live code exists for phone.
	Get(ctx context.Context, phone string) (code string, ok bool, err error)
}

type OTPSender interface {
	Send(ctx context.Context, phone, code string) error
}

type UserRepository interface {
	UpsertVerified(ctx context.Context, phone string, location *string) (*entity.User, error)
}
