package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"studenthub-core/internal/domain/entity"
)

const searchCacheFreshness = 24 * time.Hour

// QdrantSearchCache stores answered search queries by their embedding.
type QdrantSearchCache struct {
	client         *qdrant.Client
	collectionName string
	logger         *zap.Logger
}

func NewQdrantSearchCache(client *qdrant.Client, collectionName string, logger *zap.Logger) *QdrantSearchCache {
	return &QdrantSearchCache{
		client:         client,
		collectionName: collectionName,
		logger:         logger.With(zap.String("component", "search_cache")),
	}
}

func (s *QdrantSearchCache) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err != nil {
		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.NotFound {
			return err
		}
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     dim,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	// index for the freshness filter
	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collectionName,
		FieldName:      "created_at",
		FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		s.logger.Warn("could not create created_at index, it may already exist", zap.Error(err))
	}
	return nil
}

// Search returns the closest fresh answer scoring at least threshold, with the query it
// was stored under. A miss returns a nil result and no error.
func (s *QdrantSearchCache) Search(ctx context.Context, vector []float32, threshold float32) (*entity.SearchResult, string, error) {
	since := time.Now().Add(-searchCacheFreshness).Unix()

	res, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewRange("created_at", &qdrant.Range{Gte: qdrant.PtrOf(float64(since))}),
			},
		},
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
		ScoreThreshold: &threshold,
	})
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return nil, "", nil
	}

	payload := res[0].Payload
	var result entity.SearchResult
	if err := json.Unmarshal([]byte(payload["result"].GetStringValue()), &result); err != nil {
		return nil, "", fmt.Errorf("decode cached result: %w", err)
	}
	return &result, payload["query"].GetStringValue(), nil
}

func (s *QdrantSearchCache) Save(ctx context.Context, query string, result *entity.SearchResult, vector []float32) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	_, err = s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(uuid.NewString()),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"query":      query,
					"result":     string(raw),
					"created_at": time.Now().Unix(),
				}),
			},
		},
	})
	return err
}
