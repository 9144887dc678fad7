package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"studenthub-core/internal/domain/entity"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, req entity.CompletionRequest) (*entity.Completion, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*entity.Completion)
	return resp, args.Error(1)
}

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	v, _ := args.Get(0).([]float32)
	return v, args.Error(1)
}

type mockSearchCache struct {
	mock.Mock
}

func (m *mockSearchCache) Search(ctx context.Context, vector []float32, threshold float32) (*entity.SearchResult, string, error) {
	args := m.Called(ctx, vector, threshold)
	r, _ := args.Get(0).(*entity.SearchResult)
	return r, args.String(1), args.Error(2)
}

func (m *mockSearchCache) Save(ctx context.Context, query string, result *entity.SearchResult, vector []float32) error {
	return m.Called(ctx, query, result, vector).Error(0)
}

type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) IsMatch(ctx context.Context, userPrompt, cachedPrompt string) bool {
	return m.Called(ctx, userPrompt, cachedPrompt).Bool(0)
}

type mockOTPStore struct {
	mock.Mock
}

func (m *mockOTPStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	return m.Called(ctx, phone, code, ttl).Error(0)
}

func (m *mockOTPStore) Get(ctx context.Context, phone string) (string, bool, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Bool(1), args.Error(2)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, phone, code string) error {
	return m.Called(ctx, phone, code).Error(0)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) UpsertVerified(ctx context.Context, phone string, location *string) (*entity.User, error) {
	args := m.Called(ctx, phone, location)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func completion(content string) *entity.Completion {
	return &entity.Completion{Content: content, Model: "sonar"}
}
