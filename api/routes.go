package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ytznab/ytznab/api/health"
	"github.com/ytznab/ytznab/api/torznab"
	"github.com/ytznab/ytznab/api/types"
	"github.com/ytznab/ytznab/api/version"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}
	if deps.Searcher == nil {
		return fmt.Errorf("no search adapter configured")
	}

	// Public ops routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	engine.NoRoute(NotFoundHandler())

	// Torznab endpoint family under the configured base path. Each search
	// forks a subprocess, so keep the limit tight (2 req/s, burst of 5).
	group := engine.Group(deps.Config.Indexer.BasePath)
	group.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5))
	torznab.RegisterRoutes(group, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
