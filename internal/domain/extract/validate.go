package extract

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"studenthub-core/internal/domain/entity"
)

// Validator checks extracted items against per-category JSON schemas.
// Compiled schemas are cached by their source text.
type Validator struct {
	schemas sync.Map // string -> *gojsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{}
}

// Filter keeps the items that are JSON objects satisfying schemaJSON and returns them
// together with the number of items it dropped. An empty schema accepts any object.
func (v *Validator) Filter(schemaJSON string, items []any) ([]entity.Record, int, error) {
	var schema *gojsonschema.Schema
	if schemaJSON != "" {
		var err error
		schema, err = v.compile(schemaJSON)
		if err != nil {
			return nil, 0, err
		}
	}

	records := make([]entity.Record, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if schema != nil {
			result, err := schema.Validate(gojsonschema.NewGoLoader(rec))
			if err != nil || !result.Valid() {
				continue
			}
		}
		records = append(records, rec)
	}
	return records, len(items) - len(records), nil
}

func (v *Validator) compile(schemaJSON string) (*gojsonschema.Schema, error) {
	if s, ok := v.schemas.Load(schemaJSON); ok {
		return s.(*gojsonschema.Schema), nil
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	v.schemas.Store(schemaJSON, s)
	return s, nil
}
