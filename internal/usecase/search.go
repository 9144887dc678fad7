package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/extract"
	"studenthub-core/internal/domain/prompt"
	"studenthub-core/internal/domain/repository"
	"studenthub-core/internal/metrics"
)

const cacheSaveTimeout = 10 * time.Second

// SemanticCache is the optional embedding-keyed cache in front of free-text search.
type SemanticCache struct {
	Embedder  repository.Embedder
	Store     repository.SearchCache
	Matcher   repository.IntentMatcher
	Threshold float32
}

type SearchService struct {
	completer repository.Completer
	cache     *SemanticCache
	logger    *zap.Logger
	pending   sync.WaitGroup
}

// NewSearchService builds the search use case. cache may be nil.
func NewSearchService(completer repository.Completer, cache *SemanticCache, logger *zap.Logger) *SearchService {
	return &SearchService{
		completer: completer,
		cache:     cache,
		logger:    logger.With(zap.String("component", "search")),
	}
}

func (s *SearchService) Search(ctx context.Context, query string) (*entity.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", entity.ErrValidationFailed)
	}

	// 1. Semantic Cache Lookup
	var vector []float32
	if s.cache != nil {
		var hit *entity.SearchResult
		vector, hit = s.lookup(ctx, query)
		if hit != nil {
			return hit, nil
		}
	}

	// 2. Ask the completion service
	resp, err := s.completer.Complete(ctx, prompt.Build(entity.CategorySearch).Request(query))
	if err != nil {
		return nil, err
	}
	result := extract.FreeText(resp.Content)

	// 3. Background: store the answer
	if vector != nil {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			bgCtx, cancel := context.WithTimeout(context.Background(), cacheSaveTimeout)
			defer cancel()
			if err := s.cache.Store.Save(bgCtx, query, &result, vector); err != nil {
				s.logger.Warn("failed to cache search result", zap.Error(err))
			}
		}()
	}

	return &result, nil
}

// lookup returns the query vector (nil when embedding failed) and a confirmed hit, if any.
func (s *SearchService) lookup(ctx context.Context, query string) ([]float32, *entity.SearchResult) {
	vector, err := s.cache.Embedder.CreateEmbedding(ctx, query)
	if err != nil {
		metrics.SearchCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("embedding failed, skipping cache", zap.Error(err))
		return nil, nil
	}

	hit, cachedQuery, err := s.cache.Store.Search(ctx, vector, s.cache.Threshold)
	if err != nil {
		metrics.SearchCacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("search cache lookup failed", zap.Error(err))
		return vector, nil
	}
	if hit == nil {
		metrics.SearchCacheLookups.WithLabelValues("miss").Inc()
		return vector, nil
	}

	if !strings.EqualFold(strings.TrimSpace(cachedQuery), strings.TrimSpace(query)) &&
		!s.cache.Matcher.IsMatch(ctx, query, cachedQuery) {
		metrics.SearchCacheLookups.WithLabelValues("rejected").Inc()
		return vector, nil
	}

	metrics.SearchCacheLookups.WithLabelValues("hit").Inc()
	s.logger.Debug("search cache hit", zap.String("cached_query", cachedQuery))
	return vector, hit
}

// Close waits for background cache writes to finish.
func (s *SearchService) Close() {
	s.pending.Wait()
}
