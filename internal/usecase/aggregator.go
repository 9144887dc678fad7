package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"studenthub-core/internal/domain/entity"
)

type CategoryFetcher interface {
	Fetch(ctx context.Context, category entity.Category) ([]entity.Record, error)
}

// InsightSections maps each key of the combined insights payload to its category.
var InsightSections = map[string]entity.Category{
	"packages": entity.CategoryHighestPackages,
	"courses":  entity.CategoryTrendingCourses,
	"colleges": entity.CategoryTrendingColleges,
}

// Aggregator fans the insight categories out concurrently and returns all of them or nothing.
type Aggregator struct {
	fetcher CategoryFetcher
	logger  *zap.Logger
}

func NewAggregator(fetcher CategoryFetcher, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger.With(zap.String("component", "aggregator")),
	}
}

func (a *Aggregator) FetchAll(ctx context.Context) (map[string][]entity.Record, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string][]entity.Record, len(InsightSections))

	for key, category := range InsightSections {
		g.Go(func() error {
			records, err := a.fetcher.Fetch(gctx, category)
			if err != nil {
				a.logger.Warn("insight section failed", zap.String("section", key), zap.Error(err))
				return err
			}
			mu.Lock()
			results[key] = records
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
