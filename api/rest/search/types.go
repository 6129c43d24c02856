package search

// request payload for chunk retrieval
type SearchRequest struct {
	Query string `json:"query" binding:"required"`

	// TopK defaults to the server-configured value when omitted.
	// An explicit zero returns an empty result without querying.
	TopK *int `json:"top_k" binding:"omitempty,gte=0"`

	// Category and Categories are mutually exclusive
	Category   string   `json:"category,omitempty"`
	Categories []string `json:"categories,omitempty"`

	DistanceThreshold *float64 `json:"distance_threshold" binding:"omitempty,gte=0"`
}

// one retrieved chunk with similarity decoration
type ChunkResponse struct {
	DocumentID string  `json:"document_id"`
	Text       string  `json:"text"`
	Category   string  `json:"category,omitempty"`
	Distance   float64 `json:"distance"`
	Similarity float64 `json:"similarity"`
	Tier       int     `json:"tier"`
	TierLabel  string  `json:"tier_label"`
	Source     string  `json:"source"`
}

// FallbackPreview summarizes one unfiltered match for diagnostics
type FallbackPreview struct {
	DocumentID  string  `json:"document_id"`
	Distance    float64 `json:"distance"`
	TextSnippet string  `json:"text_snippet"`
}

// DiagnosticResponse explains why the filtered search came back empty
type DiagnosticResponse struct {
	AppliedCategories []string          `json:"applied_categories,omitempty"`
	AppliedThreshold  *float64          `json:"applied_threshold,omitempty"`
	FallbackCount     int               `json:"fallback_count"`
	FallbackPreview   []FallbackPreview `json:"fallback_preview"`
	Message           string            `json:"message"`
}

// response payload for chunk retrieval
type SearchResponse struct {
	Primary    []ChunkResponse     `json:"primary"`
	Fallback   []ChunkResponse     `json:"fallback,omitempty"`
	Diagnostic *DiagnosticResponse `json:"diagnostic,omitempty"`
}
