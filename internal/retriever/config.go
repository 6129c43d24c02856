package retriever

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultTopK                = 5
	defaultOverfetchMultiplier = 3
	fallbackPreviewLimit       = 3
	snippetMaxLen              = 200
)

// Config tunes the retrieval engine
type Config struct {
	// DefaultTopK is applied when a caller does not say how many chunks it wants
	DefaultTopK int

	// OverfetchMultiplier widens the index query when a distance threshold
	// will filter results afterwards
	OverfetchMultiplier int
}

// LoadConfig reads engine tuning from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		DefaultTopK:         defaultTopK,
		OverfetchMultiplier: defaultOverfetchMultiplier,
	}

	if raw := os.Getenv("RETRIEVAL_TOP_K"); raw != "" {
		topK, err := strconv.Atoi(raw)
		if err != nil || topK < 1 {
			return nil, fmt.Errorf("invalid RETRIEVAL_TOP_K value: %s", raw)
		}

		config.DefaultTopK = topK
	}

	if raw := os.Getenv("RETRIEVAL_OVERFETCH_MULTIPLIER"); raw != "" {
		multiplier, err := strconv.Atoi(raw)
		if err != nil || multiplier < 1 {
			return nil, fmt.Errorf("invalid RETRIEVAL_OVERFETCH_MULTIPLIER value: %s", raw)
		}

		config.OverfetchMultiplier = multiplier
	}

	return config, nil
}
