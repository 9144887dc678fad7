package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/extract"
	"studenthub-core/internal/domain/prompt"
	"studenthub-core/internal/domain/repository"
	"studenthub-core/internal/metrics"
)

// Catalog answers the structured endpoints: one category in, one list of records out.
type Catalog struct {
	completer repository.Completer
	validator *extract.Validator
	logger    *zap.Logger
}

func NewCatalog(completer repository.Completer, validator *extract.Validator, logger *zap.Logger) *Catalog {
	return &Catalog{
		completer: completer,
		validator: validator,
		logger:    logger.With(zap.String("component", "catalog")),
	}
}

func (c *Catalog) Fetch(ctx context.Context, category entity.Category) ([]entity.Record, error) {
	log := c.logger.With(zap.String("category", string(category)))

	// 1. Build the fixed prompt
	tpl := prompt.Build(category)

	// 2. Ask the completion service
	resp, err := c.completer.Complete(ctx, tpl.Request(""))
	if err != nil {
		return nil, err
	}

	// 3. Recover the JSON array
	items, err := extract.Structured(resp.Content, tpl.Policy)
	if err != nil {
		metrics.Extractions.WithLabelValues(string(category), "failed").Inc()
		log.Error("could not extract JSON from completion", zap.Int("content_length", len(resp.Content)), zap.Error(err))
		return nil, err
	}

	// 4. Drop records that do not match the category schema
	records, dropped, err := c.validator.Filter(tpl.Schema, items)
	if err != nil {
		return nil, fmt.Errorf("validate %s records: %w", category, err)
	}
	if dropped > 0 {
		metrics.RecordsRejected.WithLabelValues(string(category)).Add(float64(dropped))
		log.Warn("dropped invalid records", zap.Int("dropped", dropped), zap.Int("kept", len(records)))
	}

	if len(records) == 0 {
		metrics.Extractions.WithLabelValues(string(category), "empty").Inc()
		return nil, fmt.Errorf("%w: no %s records", entity.ErrNotFound, category)
	}

	metrics.Extractions.WithLabelValues(string(category), "ok").Inc()
	return records, nil
}
