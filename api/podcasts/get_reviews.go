package podcasts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/services/reviews"
)

// GetReviews returns a podcast's reviews with its average rating
// @Summary      List podcast reviews
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast id" minimum(1)
// @Success      200 {object} types.ReviewsResponse "Reviews with average rating"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast id"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/reviews [get]
func GetReviews(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseIntParam(c, "id")
		if !ok {
			return
		}

		podcastReviews, average, err := deps.ReviewService.ReviewsForPodcast(c.Request.Context(), podcastID)
		if errors.Is(err, reviews.ErrNoSuchPodcast) {
			types.SendNotFound(c, "Podcast not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Int("podcast_id", podcastID).Msg("Failed to list reviews")
			types.SendInternalError(c, "Failed to list reviews")
			return
		}

		c.JSON(http.StatusOK, types.ReviewsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			Reviews:       types.FromReviews(podcastReviews),
			AverageRating: average,
			Count:         len(podcastReviews),
		})
	}
}
