package health

import (
	"net/http"

	"codeberg.org/algopatterns/retrieval/internal/index"
	"github.com/gin-gonic/gin"
)

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "retrieval",
		Version: "1.0.0",
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// reports whether the configured index backend can serve queries
func ReadyHandler(idx index.Index, backend string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := idx.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, ReadyResponse{
				Status:  "unavailable",
				Backend: backend,
				Error:   err.Error(),
			})

			return
		}

		c.JSON(http.StatusOK, ReadyResponse{
			Status:  "ready",
			Backend: backend,
		})
	}
}
