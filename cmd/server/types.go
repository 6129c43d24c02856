package main

import (
	"codeberg.org/algopatterns/retrieval/internal/config"
	"codeberg.org/algopatterns/retrieval/internal/index"
	"codeberg.org/algopatterns/retrieval/internal/llm"
	"codeberg.org/algopatterns/retrieval/internal/retriever"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config      *config.Config
	services    *Services
	router      *gin.Engine
	rateLimiter gin.HandlerFunc
}

// holds all external service clients (embedder, vector index, engine)
type Services struct {
	Embedder llm.Embedder
	Index    index.Index
	Engine   *retriever.Engine
}
