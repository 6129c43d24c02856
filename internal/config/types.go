package config

type Config struct {
	DatabaseURL      string
	OpenAIKey        string
	JWTSecret        string
	RedisURL         string
	Environment      string
	IndexBackend     string
	MilvusAddress    string
	MilvusCollection string
	RateLimit        string
	AllowedOrigins   []string
}

// supported vector index backends
const (
	IndexBackendPgvector = "pgvector"
	IndexBackendMilvus   = "milvus"
)
