package auth

import (
	"strings"

	"codeberg.org/algopatterns/retrieval/internal/errors"
	"github.com/gin-gonic/gin"
)

// validates JWT tokens and adds the calling service to the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := ValidateJWT(parts[1])
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("client_id", claims.ClientID)
		c.Set("client_name", claims.Name)

		c.Next()
	}
}

// extracts client_id from context after AuthMiddleware
func GetClientID(c *gin.Context) (string, bool) {
	clientID, exists := c.Get("client_id")

	if !exists {
		return "", false
	}

	return clientID.(string), true
}
