package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultRateLimit        = "60-M"
	defaultMilvusCollection = "chunk_embeddings"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	jwtSecret := os.Getenv("JWT_SECRET")
	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	environment := os.Getenv("ENVIRONMENT")
	indexBackend := os.Getenv("INDEX_BACKEND")
	milvusAddress := os.Getenv("MILVUS_ADDRESS")
	milvusCollection := os.Getenv("MILVUS_COLLECTION")
	rateLimit := os.Getenv("RATE_LIMIT")

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if indexBackend == "" {
		indexBackend = IndexBackendPgvector
	}

	switch indexBackend {
	case IndexBackendPgvector:
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the pgvector backend")
		}
	case IndexBackendMilvus:
		if milvusAddress == "" {
			return nil, fmt.Errorf("MILVUS_ADDRESS environment variable is required for the milvus backend")
		}

		if milvusCollection == "" {
			milvusCollection = defaultMilvusCollection
		}
	default:
		return nil, fmt.Errorf("unsupported INDEX_BACKEND: %s", indexBackend)
	}

	if environment == "" {
		environment = "development"
	}

	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	return &Config{
		DatabaseURL:      databaseURL,
		OpenAIKey:        openaiKey,
		JWTSecret:        jwtSecret,
		RedisURL:         redisURL,
		Environment:      environment,
		IndexBackend:     indexBackend,
		MilvusAddress:    milvusAddress,
		MilvusCollection: milvusCollection,
		RateLimit:        rateLimit,
		AllowedOrigins:   parseAllowedOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// splits the comma-separated CORS origin list; empty means allow all
func parseAllowedOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
