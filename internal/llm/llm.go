package llm

import (
	"context"
	"fmt"
)

// NewEmbedder creates an embedder using configuration from environment variables
func NewEmbedder(ctx context.Context) (Embedder, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedder config: %w", err)
	}

	return NewEmbedderWithConfig(ctx, config)
}

// NewEmbedderWithConfig creates an embedder with explicit configuration
func NewEmbedderWithConfig(ctx context.Context, config *Config) (Embedder, error) {
	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIEmbedder(config.APIKey, config.Model), nil
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", config.Provider)
	}
}
