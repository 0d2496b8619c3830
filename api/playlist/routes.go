package playlist

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/auth"
	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers playlist routes. Everything here requires a
// valid session token.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(auth.RequireAuth(deps))

	// GET /api/v1/playlist
	router.GET("", Get(deps))

	// POST /api/v1/playlist/episodes
	router.POST("/episodes", AddEpisode(deps))

	// DELETE /api/v1/playlist/episodes
	router.DELETE("/episodes", DeleteEpisode(deps))

	// POST /api/v1/playlist/podcasts
	router.POST("/podcasts", AddPodcast(deps))

	// DELETE /api/v1/playlist/podcasts
	router.DELETE("/podcasts", DeletePodcast(deps))
}
