package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

// GetRating returns a podcast's formatted average rating
// @Summary      Get average rating
// @Description  The rating is the unweighted mean of all review ratings,
// @Description  formatted to one decimal place. A podcast without reviews
// @Description  reports "No ratings yet!".
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast id" minimum(1)
// @Success      200 {object} types.RatingResponse "Formatted average rating"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast id"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/rating [get]
func GetRating(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseIntParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.Repo.GetPodcast(c.Request.Context(), podcastID)
		if err != nil {
			log.Error().Err(err).Int("podcast_id", podcastID).Msg("Failed to get podcast")
			types.SendInternalError(c, "Failed to get podcast")
			return
		}
		if podcast == nil {
			types.SendNotFound(c, "Podcast not found")
			return
		}

		rating, err := deps.Repo.GetAverageRating(c.Request.Context(), podcastID)
		if err != nil {
			log.Error().Err(err).Int("podcast_id", podcastID).Msg("Failed to compute rating")
			types.SendInternalError(c, "Failed to compute rating")
			return
		}

		c.JSON(http.StatusOK, types.RatingResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK},
			PodcastID:     podcastID,
			AverageRating: rating,
		})
	}
}
