package charts

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers chart routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/charts/top
	router.GET("/top", GetTop(deps))
}
