package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// Get handles health check requests. The catalogue stays usable with the
// in-memory backend, so a missing database reads "not configured" rather
// than failing the check.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Database:     databaseStatus(deps),
		})
	}
}

func databaseStatus(deps *types.Dependencies) map[string]any {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]any{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]any{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]any{"status": "healthy"}
}
