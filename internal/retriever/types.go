package retriever

import (
	"fmt"

	"codeberg.org/algopatterns/retrieval/internal/index"
	"codeberg.org/algopatterns/retrieval/internal/llm"
)

// chunk provenance markers
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// Engine performs dual-filtered top-k retrieval over an embedded corpus.
// It keeps no per-request state, so a single instance is safe for
// concurrent use.
type Engine struct {
	embedder            llm.Embedder
	index               index.Index
	defaultTopK         int
	overfetchMultiplier int
}

// Request describes a single retrieval invocation.
type Request struct {
	Query string
	TopK  int

	// Category restricts results to a single category, empty means no filter.
	// Categories restricts to any of several and wins when both are set.
	Category   string
	Categories []string

	// DistanceThreshold drops results farther than this cosine distance,
	// nil means no cutoff
	DistanceThreshold *float64
}

// RetrievedChunk is one chunk of retrieved context
type RetrievedChunk struct {
	DocumentID string
	Text       string
	Category   string
	Distance   float64
	Source     string
}

// FallbackCandidate summarizes one unfiltered match for diagnostics
type FallbackCandidate struct {
	DocumentID  string
	Distance    float64
	TextSnippet string
}

// Diagnostic explains an empty filtered search. FallbackCount of zero
// means the corpus itself had nothing close, not that the filters were
// too strict.
type Diagnostic struct {
	AppliedCategories []string
	AppliedThreshold  *float64
	FallbackCount     int
	FallbackPreview   []FallbackCandidate
}

// Result carries the retrieval outcome. Fallback and Diagnostic are
// non-nil exactly when the filtered search came back empty and the
// fallback protocol ran.
type Result struct {
	Primary    []RetrievedChunk
	Fallback   []RetrievedChunk
	Diagnostic *Diagnostic
}

// EmbeddingError reports a failure to embed the query text
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("failed to generate query embedding: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// IndexQueryError reports a failure to query the vector index
type IndexQueryError struct {
	Err error
}

func (e *IndexQueryError) Error() string {
	return fmt.Sprintf("failed to query vector index: %v", e.Err)
}

func (e *IndexQueryError) Unwrap() error {
	return e.Err
}
