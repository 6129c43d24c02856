package search

import (
	"codeberg.org/algopatterns/retrieval/internal/auth"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the search endpoint behind service auth.
// Extra middleware (rate limiting) runs before authentication.
func RegisterRoutes(router *gin.RouterGroup, engine Retriever, middleware ...gin.HandlerFunc) {
	searchGroup := router.Group("/search")
	searchGroup.Use(middleware...)
	searchGroup.Use(auth.AuthMiddleware())
	{
		searchGroup.POST("", SearchHandler(engine))
	}
}
