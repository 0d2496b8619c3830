package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/auth/register
	router.POST("/register", Register(deps))

	// POST /api/v1/auth/login
	router.POST("/login", Login(deps))

	// GET /api/v1/auth/me
	router.GET("/me", RequireAuth(deps), Me(deps))
}
