package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
)

const (
	milvusVectorField = "embedding"
	milvusEfSearch    = 64
)

var milvusOutputFields = []string{"document_id", "content", "category"}

// MilvusIndex serves nearest-neighbour queries from a Milvus collection.
// Collections use the COSINE metric, so scores are converted back to
// distances before returning.
type MilvusIndex struct {
	client     client.Client
	collection string
}

type MilvusConfig struct {
	Address    string
	Collection string
}

func NewMilvusIndex(ctx context.Context, config MilvusConfig) (*MilvusIndex, error) {
	milvusClient, err := client.NewClient(ctx, client.Config{
		Address: config.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus client: %w", err)
	}

	hasCollection, err := milvusClient.HasCollection(ctx, config.Collection)
	if err != nil {
		milvusClient.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to check collection: %w", err)
	}

	if !hasCollection {
		milvusClient.Close() //nolint:errcheck
		return nil, fmt.Errorf("milvus collection %s does not exist", config.Collection)
	}

	return &MilvusIndex{
		client:     milvusClient,
		collection: config.Collection,
	}, nil
}

// Query returns up to limit chunks ordered by ascending cosine distance
func (m *MilvusIndex) Query(ctx context.Context, vector []float32, predicate *Predicate, limit int) ([]Candidate, error) {
	expr, err := buildSearchExpr(predicate)
	if err != nil {
		return nil, err
	}

	sp, err := entity.NewIndexHNSWSearchParam(milvusEfSearch)
	if err != nil {
		return nil, fmt.Errorf("failed to build search params: %w", err)
	}

	searchResults, err := m.client.Search(
		ctx,
		m.collection,
		[]string{},
		expr,
		milvusOutputFields,
		[]entity.Vector{entity.FloatVector(vector)},
		milvusVectorField,
		entity.COSINE,
		limit,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("milvus search failed: %w", err)
	}

	if len(searchResults) == 0 {
		return nil, nil
	}

	// one query vector, so only the first result carries data
	result := searchResults[0]
	if result.Err != nil {
		return nil, fmt.Errorf("milvus search error: %w", result.Err)
	}

	var ids, texts, categories []string

	for _, field := range result.Fields {
		switch field.Name() {
		case "document_id":
			if col, ok := field.(*entity.ColumnVarChar); ok {
				ids = col.Data()
			}
		case "content":
			if col, ok := field.(*entity.ColumnVarChar); ok {
				texts = col.Data()
			}
		case "category":
			if col, ok := field.(*entity.ColumnVarChar); ok {
				categories = col.Data()
			}
		}
	}

	candidates := make([]Candidate, 0, result.ResultCount)

	for i := 0; i < result.ResultCount; i++ {
		var candidate Candidate

		if i < len(ids) {
			candidate.DocumentID = ids[i]
		}
		if i < len(texts) {
			candidate.Text = texts[i]
		}
		if i < len(categories) {
			candidate.Category = categories[i]
		}
		if i < len(result.Scores) {
			candidate.Distance = cosineDistance(result.Scores[i])
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Ping verifies milvus is reachable
func (m *MilvusIndex) Ping(ctx context.Context) error {
	if _, err := m.client.ListCollections(ctx); err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	return nil
}

// Close closes the underlying milvus connection
func (m *MilvusIndex) Close() {
	m.client.Close() //nolint:errcheck
}

// cosineDistance converts a COSINE similarity score to a cosine distance
func cosineDistance(score float32) float64 {
	return 1 - float64(score)
}

func buildSearchExpr(predicate *Predicate) (string, error) {
	if predicate == nil {
		return "", nil
	}

	field, ok := predicateFields[predicate.Field]
	if !ok {
		return "", fmt.Errorf("unsupported predicate field: %s", predicate.Field)
	}

	switch len(predicate.Values) {
	case 0:
		return "", fmt.Errorf("predicate on %s has no values", predicate.Field)
	case 1:
		return fmt.Sprintf(`%s == "%s"`, field, escapeMilvusString(predicate.Values[0])), nil
	default:
		quoted := make([]string, len(predicate.Values))
		for i, value := range predicate.Values {
			quoted[i] = `"` + escapeMilvusString(value) + `"`
		}
		return fmt.Sprintf("%s in [%s]", field, strings.Join(quoted, ", ")), nil
	}
}

func escapeMilvusString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
