package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

// GetEpisodes returns the episodes of one podcast
// @Summary      List podcast episodes
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast id" minimum(1)
// @Success      200 {object} types.EpisodesResponse "Episodes of the podcast"
// @Failure      400 {object} types.ErrorResponse "Invalid podcast id"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/v1/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
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

		episodes, err := deps.Repo.GetEpisodesByPodcastID(c.Request.Context(), podcastID)
		if err != nil {
			log.Error().Err(err).Int("podcast_id", podcastID).Msg("Failed to list episodes")
			types.SendInternalError(c, "Failed to list episodes")
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     types.FromEpisodes(episodes),
			Count:        len(episodes),
		})
	}
}
