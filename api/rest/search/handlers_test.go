package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/algopatterns/retrieval/internal/retriever"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	result      *retriever.Result
	err         error
	topKDefault int
	lastRequest *retriever.Request
}

func (f *fakeEngine) RetrieveTopChunks(ctx context.Context, req retriever.Request) (*retriever.Result, error) {
	f.lastRequest = &req

	if f.err != nil {
		return nil, f.err
	}

	return f.result, nil
}

func (f *fakeEngine) DefaultTopK() int {
	if f.topKDefault > 0 {
		return f.topKDefault
	}

	return 5
}

func postSearch(t *testing.T, engine Retriever, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/v1/search", SearchHandler(engine))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	code, _ := body["error"].(string)
	return code
}

func TestSearchHandler_Success(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{
		Primary: []retriever.RetrievedChunk{
			{DocumentID: "a", Text: "close match", Category: "docs", Distance: 0.3, Source: retriever.SourcePrimary},
			{DocumentID: "b", Text: "decent match", Category: "docs", Distance: 0.9, Source: retriever.SourcePrimary},
		},
	}}

	w := postSearch(t, engine, `{"query": "how do I sequence drums"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Primary, 2)
	assert.Nil(t, response.Fallback)
	assert.Nil(t, response.Diagnostic)

	first := response.Primary[0]
	assert.Equal(t, "a", first.DocumentID)
	assert.Equal(t, 5, first.Tier)
	assert.Equal(t, "very high", first.TierLabel)
	assert.InDelta(t, 1.0/1.3, first.Similarity, 1e-9)
	assert.Equal(t, "primary", first.Source)

	second := response.Primary[1]
	assert.Equal(t, 3, second.Tier)
	assert.Equal(t, "good", second.TierLabel)
}

func TestSearchHandler_AppliesDefaultTopK(t *testing.T) {
	engine := &fakeEngine{
		result:      &retriever.Result{Primary: []retriever.RetrievedChunk{}},
		topKDefault: 7,
	}

	w := postSearch(t, engine, `{"query": "anything"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, engine.lastRequest)
	assert.Equal(t, 7, engine.lastRequest.TopK)
}

func TestSearchHandler_HonorsExplicitZeroTopK(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{Primary: []retriever.RetrievedChunk{}}}

	w := postSearch(t, engine, `{"query": "anything", "top_k": 0}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, engine.lastRequest)
	assert.Equal(t, 0, engine.lastRequest.TopK)
}

func TestSearchHandler_PassesFiltersThrough(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{Primary: []retriever.RetrievedChunk{}}}

	w := postSearch(t, engine, `{"query": "anything", "top_k": 3, "category": "docs", "distance_threshold": 0.8}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, engine.lastRequest)
	assert.Equal(t, 3, engine.lastRequest.TopK)
	assert.Equal(t, "docs", engine.lastRequest.Category)
	require.NotNil(t, engine.lastRequest.DistanceThreshold)
	assert.Equal(t, 0.8, *engine.lastRequest.DistanceThreshold)
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{}}

	w := postSearch(t, engine, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", errorCode(t, w))
	assert.Nil(t, engine.lastRequest, "engine should not be called on invalid input")
}

func TestSearchHandler_NegativeThreshold(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{}}

	w := postSearch(t, engine, `{"query": "anything", "distance_threshold": -0.5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, engine.lastRequest)
}

func TestSearchHandler_RejectsBothCategoryFields(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{}}

	w := postSearch(t, engine, `{"query": "anything", "category": "docs", "categories": ["docs", "examples"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", errorCode(t, w))
	assert.Nil(t, engine.lastRequest)
}

func TestSearchHandler_EmbeddingErrorMapsToBadGateway(t *testing.T) {
	engine := &fakeEngine{err: &retriever.EmbeddingError{Err: errors.New("api down")}}

	w := postSearch(t, engine, `{"query": "anything"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "embedding_failed", errorCode(t, w))
}

func TestSearchHandler_IndexErrorMapsToBadGateway(t *testing.T) {
	engine := &fakeEngine{err: &retriever.IndexQueryError{Err: errors.New("connection refused")}}

	w := postSearch(t, engine, `{"query": "anything"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "index_query_failed", errorCode(t, w))
}

func TestSearchHandler_FallbackRendering(t *testing.T) {
	thresholdValue := 0.5
	engine := &fakeEngine{result: &retriever.Result{
		Primary: []retriever.RetrievedChunk{},
		Fallback: []retriever.RetrievedChunk{
			{DocumentID: "a", Text: "excluded by filters", Category: "examples", Distance: 1.1, Source: retriever.SourceFallback},
			{DocumentID: "b", Text: "also excluded", Category: "examples", Distance: 1.4, Source: retriever.SourceFallback},
		},
		Diagnostic: &retriever.Diagnostic{
			AppliedCategories: []string{"docs"},
			AppliedThreshold:  &thresholdValue,
			FallbackCount:     2,
			FallbackPreview: []retriever.FallbackCandidate{
				{DocumentID: "a", Distance: 1.1, TextSnippet: "excluded by filters"},
			},
		},
	}}

	w := postSearch(t, engine, `{"query": "anything", "category": "docs", "distance_threshold": 0.5}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Empty(t, response.Primary)
	require.Len(t, response.Fallback, 2)
	assert.Equal(t, "fallback", response.Fallback[0].Source)

	diagnostic := response.Diagnostic
	require.NotNil(t, diagnostic)
	assert.Equal(t, []string{"docs"}, diagnostic.AppliedCategories)
	require.NotNil(t, diagnostic.AppliedThreshold)
	assert.Equal(t, 0.5, *diagnostic.AppliedThreshold)
	assert.Equal(t, 2, diagnostic.FallbackCount)
	require.Len(t, diagnostic.FallbackPreview, 1)
	assert.Contains(t, diagnostic.Message, "filters excluded")
}

func TestSearchHandler_EmptyCorpusMessage(t *testing.T) {
	engine := &fakeEngine{result: &retriever.Result{
		Primary:  []retriever.RetrievedChunk{},
		Fallback: []retriever.RetrievedChunk{},
		Diagnostic: &retriever.Diagnostic{
			AppliedCategories: []string{"docs"},
			FallbackCount:     0,
			FallbackPreview:   []retriever.FallbackCandidate{},
		},
	}}

	w := postSearch(t, engine, `{"query": "anything", "category": "docs"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.NotNil(t, response.Diagnostic)
	assert.Equal(t, "no matching content in the corpus", response.Diagnostic.Message)
}
