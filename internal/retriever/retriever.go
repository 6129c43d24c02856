package retriever

import (
	"context"

	"codeberg.org/algopatterns/retrieval/internal/index"
	"codeberg.org/algopatterns/retrieval/internal/llm"
)

// NewEngine creates a retrieval engine over the given embedder and index.
// A nil config falls back to the built-in defaults.
func NewEngine(embedder llm.Embedder, idx index.Index, config *Config) *Engine {
	engine := &Engine{
		embedder:            embedder,
		index:               idx,
		defaultTopK:         defaultTopK,
		overfetchMultiplier: defaultOverfetchMultiplier,
	}

	if config != nil {
		if config.DefaultTopK > 0 {
			engine.defaultTopK = config.DefaultTopK
		}

		if config.OverfetchMultiplier > 0 {
			engine.overfetchMultiplier = config.OverfetchMultiplier
		}
	}

	return engine
}

// DefaultTopK is the chunk count applied when a caller leaves it unspecified
func (e *Engine) DefaultTopK() int {
	return e.defaultTopK
}

// RetrieveTopChunks embeds the query and returns the closest matching
// chunks, honoring category and distance filters. When the filters
// remove every candidate, it re-runs the search unfiltered and reports
// what the corpus could have offered so callers can tell strict filters
// apart from an empty corpus.
//
// Failures from the embedder or the index are returned as *EmbeddingError
// and *IndexQueryError respectively, never as an empty result.
func (e *Engine) RetrieveTopChunks(ctx context.Context, req Request) (*Result, error) {
	if req.TopK <= 0 {
		return &Result{Primary: []RetrievedChunk{}}, nil
	}

	vector, err := e.embedder.GenerateEmbedding(ctx, req.Query)
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}

	predicate := req.predicate()

	// over-fetch when a threshold will thin the results afterwards
	fetchK := req.TopK
	if req.DistanceThreshold != nil {
		fetchK = req.TopK * e.overfetchMultiplier
	}

	candidates, err := e.index.Query(ctx, vector, predicate, fetchK)
	if err != nil {
		return nil, &IndexQueryError{Err: err}
	}

	primary := selectChunks(candidates, req.DistanceThreshold, req.TopK, SourcePrimary)

	if len(primary) > 0 || (predicate == nil && req.DistanceThreshold == nil) {
		return &Result{Primary: primary}, nil
	}

	// filters removed everything, look at the unfiltered corpus once so
	// the caller can see what was excluded
	fallbackCandidates, err := e.index.Query(ctx, vector, nil, req.TopK)
	if err != nil {
		return nil, &IndexQueryError{Err: err}
	}

	fallback := selectChunks(fallbackCandidates, nil, req.TopK, SourceFallback)

	return &Result{
		Primary:    primary,
		Fallback:   fallback,
		Diagnostic: buildDiagnostic(req, fallback),
	}, nil
}

// predicate translates the request's category filters into an index predicate
func (r Request) predicate() *index.Predicate {
	if len(r.Categories) > 0 {
		return index.In("category", r.Categories)
	}

	if r.Category != "" {
		return index.Eq("category", r.Category)
	}

	return nil
}

func (r Request) appliedCategories() []string {
	if len(r.Categories) > 0 {
		return r.Categories
	}

	if r.Category != "" {
		return []string{r.Category}
	}

	return nil
}

// selectChunks applies the distance threshold in candidate order and
// stops as soon as topK chunks are collected. Duplicate document ids
// keep their first, closest occurrence.
func selectChunks(candidates []index.Candidate, threshold *float64, topK int, source string) []RetrievedChunk {
	chunks := make([]RetrievedChunk, 0, topK)
	seen := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		if threshold != nil && candidate.Distance > *threshold {
			continue
		}

		if seen[candidate.DocumentID] {
			continue
		}

		seen[candidate.DocumentID] = true

		chunks = append(chunks, RetrievedChunk{
			DocumentID: candidate.DocumentID,
			Text:       candidate.Text,
			Category:   candidate.Category,
			Distance:   candidate.Distance,
			Source:     source,
		})

		if len(chunks) == topK {
			break
		}
	}

	return chunks
}

func buildDiagnostic(req Request, fallback []RetrievedChunk) *Diagnostic {
	diagnostic := &Diagnostic{
		AppliedCategories: req.appliedCategories(),
		AppliedThreshold:  req.DistanceThreshold,
		FallbackCount:     len(fallback),
		FallbackPreview:   make([]FallbackCandidate, 0, min(len(fallback), fallbackPreviewLimit)),
	}

	for i, chunk := range fallback {
		if i == fallbackPreviewLimit {
			break
		}

		diagnostic.FallbackPreview = append(diagnostic.FallbackPreview, FallbackCandidate{
			DocumentID:  chunk.DocumentID,
			Distance:    chunk.Distance,
			TextSnippet: truncate(chunk.Text, snippetMaxLen),
		})
	}

	return diagnostic
}
