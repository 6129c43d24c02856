package main

import (
	"codeberg.org/algopatterns/retrieval/api/rest/health"
	"codeberg.org/algopatterns/retrieval/api/rest/search"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	router.Use(RequestIDMiddleware())

	router.GET("/health", health.Handler)
	router.GET("/health/ready", health.ReadyHandler(server.services.Index, server.config.IndexBackend))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		search.RegisterRoutes(v1, server.services.Engine, server.rateLimiter)
	}
}
