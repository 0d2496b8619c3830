package authors

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers author routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/authors
	router.GET("", Get(deps))

	// GET /api/v1/authors/:id/podcasts
	router.GET("/:id/podcasts", GetPodcasts(deps))
}
