package llm

import (
	"fmt"
	"os"
)

const defaultOpenAIEmbeddingModel = "text-embedding-3-small"

func loadConfig() (*Config, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	provider := Provider(os.Getenv("EMBEDDER_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI
	}

	model := os.Getenv("EMBEDDER_MODEL")
	if model == "" {
		model = defaultOpenAIEmbeddingModel
	}

	return &Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}, nil
}
