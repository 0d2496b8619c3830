package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// RegisterRoutes registers podcast routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/podcasts
	router.GET("", GetAll(deps))

	// GET /api/v1/podcasts/:id
	router.GET("/:id", GetPodcast(deps))

	// GET /api/v1/podcasts/:id/episodes
	router.GET("/:id/episodes", GetEpisodes(deps))

	// GET /api/v1/podcasts/:id/rating
	router.GET("/:id/rating", GetRating(deps))

	// GET /api/v1/podcasts/:id/reviews
	router.GET("/:id/reviews", GetReviews(deps))
}
