package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/auth"
	"github.com/castlog/catalogue-api/api/authors"
	"github.com/castlog/catalogue-api/api/categories"
	"github.com/castlog/catalogue-api/api/charts"
	"github.com/castlog/catalogue-api/api/health"
	"github.com/castlog/catalogue-api/api/playlist"
	"github.com/castlog/catalogue-api/api/podcasts"
	"github.com/castlog/catalogue-api/api/reviews"
	"github.com/castlog/catalogue-api/api/search"
	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/api/version"
	"github.com/castlog/catalogue-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, versionInfo types.VersionResponse, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, versionInfo)

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	limit := func(rps, burst int) gin.HandlerFunc {
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}
	generalRPS := int(cfg.RateLimiting.RequestsPerSecond)
	generalBurst := cfg.RateLimiting.Burst

	v1 := engine.Group("/api/v1")

	// Search gets a tighter limit than the browse endpoints
	searchGroup := v1.Group("/search")
	if cfg.RateLimiting.Enabled {
		searchGroup.Use(limit(5, 10))
	}
	search.RegisterRoutes(searchGroup, deps)

	groups := []struct {
		path     string
		register func(*gin.RouterGroup, *types.Dependencies)
	}{
		{"/podcasts", podcasts.RegisterRoutes},
		{"/categories", categories.RegisterRoutes},
		{"/authors", authors.RegisterRoutes},
		{"/charts", charts.RegisterRoutes},
		{"/auth", auth.RegisterRoutes},
		{"/playlist", playlist.RegisterRoutes},
		// Review submission lives under the podcast resource
		{"/podcasts", reviews.RegisterRoutes},
	}
	for _, g := range groups {
		group := v1.Group(g.path)
		if cfg.RateLimiting.Enabled {
			group.Use(limit(generalRPS, generalBurst))
		}
		g.register(group, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
