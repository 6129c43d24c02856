package main

import (
	"fmt"
	"time"

	"codeberg.org/algopatterns/retrieval/internal/config"
	"codeberg.org/algopatterns/retrieval/internal/errors"
	"codeberg.org/algopatterns/retrieval/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	libredis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// CORSMiddleware restricts cross-origin requests to the configured origins.
// An empty origin list allows all origins.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

// RequestIDMiddleware tags each request with an id for log correlation
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// attach a request-scoped logger for downstream packages
		ctx := logger.WithContext(c.Request.Context(), logger.With("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RateLimitMiddleware limits request rates per client IP. It uses Redis
// when REDIS_URL is set so limits hold across replicas, otherwise an
// in-memory store.
func RateLimitMiddleware(cfg *config.Config) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT format: %w", err)
	}

	var store limiter.Store

	if cfg.RedisURL != "" {
		options, err := libredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}

		client := libredis.NewClient(options)

		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "retrieval:limiter",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}

		logger.Info("rate limiting backed by redis", "rate", cfg.RateLimit)
	} else {
		store = memory.NewStore()
		logger.Info("rate limiting in memory", "rate", cfg.RateLimit)
	}

	middleware := mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "")
		}),
	)

	return middleware, nil
}
