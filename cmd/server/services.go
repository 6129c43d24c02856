package main

import (
	"context"
	"fmt"

	"codeberg.org/algopatterns/retrieval/internal/config"
	"codeberg.org/algopatterns/retrieval/internal/index"
	"codeberg.org/algopatterns/retrieval/internal/llm"
	"codeberg.org/algopatterns/retrieval/internal/retriever"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	ctx := context.Background()

	embedder, err := llm.NewEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	idx, err := initializeIndex(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize index backend: %w", err)
	}

	retrievalConfig, err := retriever.LoadConfig()
	if err != nil {
		idx.Close()
		return nil, fmt.Errorf("failed to load retrieval config: %w", err)
	}

	return &Services{
		Embedder: embedder,
		Index:    idx,
		Engine:   retriever.NewEngine(embedder, idx, retrievalConfig),
	}, nil
}

// connects the vector index backend selected by INDEX_BACKEND
func initializeIndex(ctx context.Context, cfg *config.Config) (index.Index, error) {
	switch cfg.IndexBackend {
	case config.IndexBackendPgvector:
		pool, err := newDatabasePool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		return index.NewPgvectorIndex(pool), nil
	case config.IndexBackendMilvus:
		return index.NewMilvusIndex(ctx, index.MilvusConfig{
			Address:    cfg.MilvusAddress,
			Collection: cfg.MilvusCollection,
		})
	default:
		return nil, fmt.Errorf("unsupported index backend: %s", cfg.IndexBackend)
	}
}
