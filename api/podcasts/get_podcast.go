package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

// GetPodcast returns podcast details by catalogue id
// @Summary      Get podcast details
// @Description  Retrieve one podcast with its author, categories and episodes.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast id" minimum(1) example(101)
// @Success      200 {object} types.SinglePodcastResponse "Podcast details"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast id"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, types.SinglePodcastResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcast:      types.FromPodcast(podcast),
		})
	}
}
