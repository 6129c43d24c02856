package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/algopatterns/retrieval/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// connection pool sizing for managed postgres poolers, which usually
// allow only a handful of connections per client
const (
	dbMaxConns          = 5
	dbMinConns          = 1
	dbMaxConnLifetime   = 30 * time.Minute
	dbMaxConnIdleTime   = 5 * time.Minute
	dbHealthCheckPeriod = 1 * time.Minute
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	rateLimiter, err := RateLimitMiddleware(cfg)
	if err != nil {
		services.Index.Close()
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	router := gin.Default()

	server := &Server{
		config:      cfg,
		services:    services,
		router:      router,
		rateLimiter: rateLimiter,
	}

	RegisterRoutes(router, server)

	return server, nil
}

func newDatabasePool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = dbMaxConns
	poolConfig.MinConns = dbMinConns
	poolConfig.MaxConnLifetime = dbMaxConnLifetime
	poolConfig.MaxConnIdleTime = dbMaxConnIdleTime
	poolConfig.HealthCheckPeriod = dbHealthCheckPeriod

	// use simple protocol so transaction-mode poolers (PgBouncer) don't
	// hang on prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
