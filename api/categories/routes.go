package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers categories routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/categories
	router.GET("", Get(deps))

	// GET /api/v1/categories/:id/podcasts
	router.GET("/:id/podcasts", GetPodcasts(deps))
}
