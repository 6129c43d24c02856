package llm

import "context"

// Provider identifies an embedding backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
)

// Embedder generates vector embeddings for text.
type Embedder interface {
	// GenerateEmbedding creates an embedding vector for a single text
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)

	// GenerateEmbeddings creates embedding vectors for multiple texts in one call
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// Config holds embedder configuration loaded from environment variables.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
}
