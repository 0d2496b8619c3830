package reviews

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/auth"
	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers review routes on the podcasts group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/podcasts/:id/reviews
	router.POST("/:id/reviews", auth.RequireAuth(deps), Create(deps))
}
