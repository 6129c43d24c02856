package search

import (
	"context"
	"fmt"
	"net/http"

	"codeberg.org/algopatterns/retrieval/internal/auth"
	"codeberg.org/algopatterns/retrieval/internal/errors"
	"codeberg.org/algopatterns/retrieval/internal/logger"
	"codeberg.org/algopatterns/retrieval/internal/retriever"
	"github.com/gin-gonic/gin"
)

// Retriever is the slice of the engine the search handlers use
type Retriever interface {
	RetrieveTopChunks(ctx context.Context, req retriever.Request) (*retriever.Result, error)
	DefaultTopK() int
}

// SearchHandler godoc
// @Summary Retrieve the most relevant chunks for a query
// @Description Embeds the query and returns the closest chunks, optionally filtered by category and maximum cosine distance. When the filters exclude every candidate, the same query is re-run unfiltered and returned as tagged fallback results alongside a diagnostic.
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search request"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /api/v1/search [post]
func SearchHandler(engine Retriever) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Category != "" && len(req.Categories) > 0 {
			errors.BadRequest(c, "category and categories are mutually exclusive", nil)
			return
		}

		topK := engine.DefaultTopK()
		if req.TopK != nil {
			topK = *req.TopK
		}

		result, err := engine.RetrieveTopChunks(c.Request.Context(), retriever.Request{
			Query:             req.Query,
			TopK:              topK,
			Category:          req.Category,
			Categories:        req.Categories,
			DistanceThreshold: req.DistanceThreshold,
		})
		if err != nil {
			errors.UpstreamError(c, err)
			return
		}

		clientID, _ := auth.GetClientID(c)
		logger.Info("search completed",
			"client_id", clientID,
			"primary", len(result.Primary),
			"fallback", len(result.Fallback),
			"request_id", c.GetString("request_id"),
		)

		c.JSON(http.StatusOK, buildResponse(result))
	}
}

func buildResponse(result *retriever.Result) SearchResponse {
	response := SearchResponse{
		Primary: decorateChunks(result.Primary),
	}

	if result.Fallback != nil {
		response.Fallback = decorateChunks(result.Fallback)
	}

	if result.Diagnostic != nil {
		response.Diagnostic = buildDiagnostic(result.Diagnostic)
	}

	return response
}

// decorateChunks adds the similarity score and tier to each chunk
func decorateChunks(chunks []retriever.RetrievedChunk) []ChunkResponse {
	decorated := make([]ChunkResponse, 0, len(chunks))

	for _, chunk := range chunks {
		tier := retriever.ClassifySimilarity(chunk.Distance)

		decorated = append(decorated, ChunkResponse{
			DocumentID: chunk.DocumentID,
			Text:       chunk.Text,
			Category:   chunk.Category,
			Distance:   chunk.Distance,
			Similarity: retriever.Similarity(chunk.Distance),
			Tier:       tier.Stars(),
			TierLabel:  tier.Label(),
			Source:     chunk.Source,
		})
	}

	return decorated
}

func buildDiagnostic(diagnostic *retriever.Diagnostic) *DiagnosticResponse {
	preview := make([]FallbackPreview, 0, len(diagnostic.FallbackPreview))

	for _, entry := range diagnostic.FallbackPreview {
		preview = append(preview, FallbackPreview{
			DocumentID:  entry.DocumentID,
			Distance:    entry.Distance,
			TextSnippet: entry.TextSnippet,
		})
	}

	return &DiagnosticResponse{
		AppliedCategories: diagnostic.AppliedCategories,
		AppliedThreshold:  diagnostic.AppliedThreshold,
		FallbackCount:     diagnostic.FallbackCount,
		FallbackPreview:   preview,
		Message:           diagnosticMessage(diagnostic),
	}
}

// diagnosticMessage distinguishes filters that were too strict from a
// corpus with nothing relevant in it
func diagnosticMessage(diagnostic *retriever.Diagnostic) string {
	if diagnostic.FallbackCount == 0 {
		return "no matching content in the corpus"
	}

	return fmt.Sprintf("filters excluded all %d nearby chunks, relaxing category or distance_threshold may help", diagnostic.FallbackCount)
}
