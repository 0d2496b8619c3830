package playlist

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
)

// AddPodcast saves a whole podcast to the user's playlist
// @Summary      Add a podcast to the playlist
// @Tags         playlist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.PlaylistPodcastRequest true "Podcast to save"
// @Success      200 {object} types.PlaylistResponse "Updated playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Unknown podcast"
// @Router       /api/v1/playlist/podcasts [post]
func AddPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, deps)
		if !ok {
			return
		}

		var req types.PlaylistPodcastRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		podcast, err := deps.Repo.GetPodcast(c.Request.Context(), req.PodcastID)
		if err != nil {
			log.Error().Err(err).Int("podcast_id", req.PodcastID).Msg("Failed to fetch podcast")
			types.SendInternalError(c, "Failed to fetch podcast")
			return
		}
		if podcast == nil {
			types.SendNotFound(c, "Podcast not found")
			return
		}

		if err := deps.Repo.AddPodcastToPlaylist(c.Request.Context(), podcast, user); err != nil {
			log.Error().Err(err).Int("podcast_id", req.PodcastID).Msg("Failed to save podcast")
			types.SendInternalError(c, "Failed to save podcast")
			return
		}

		deps.Repo.SetRecentlyAddedPodcast(podcast.ID)
		sendPlaylist(c, deps, user)
	}
}

// DeletePodcast removes one saved copy of a podcast from the playlist
// @Summary      Remove a podcast from the playlist
// @Tags         playlist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.PlaylistPodcastRequest true "Podcast to remove"
// @Success      200 {object} types.PlaylistResponse "Updated playlist"
// @Failure      404 {object} types.ErrorResponse "Podcast not in the playlist"
// @Router       /api/v1/playlist/podcasts [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, deps)
		if !ok {
			return
		}

		var req types.PlaylistPodcastRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		podcast, err := deps.Repo.GetPodcast(c.Request.Context(), req.PodcastID)
		if err != nil {
			log.Error().Err(err).Int("podcast_id", req.PodcastID).Msg("Failed to fetch podcast")
			types.SendInternalError(c, "Failed to fetch podcast")
			return
		}
		if podcast == nil {
			types.SendNotFound(c, "Podcast not found")
			return
		}

		if err := deps.Repo.DeletePodcastFromPlaylist(c.Request.Context(), podcast, user); err != nil {
			if errors.Is(err, models.ErrPodcastNotInPlaylist) {
				types.SendNotFound(c, "Podcast is not in the playlist")
				return
			}
			log.Error().Err(err).Int("podcast_id", req.PodcastID).Msg("Failed to remove podcast")
			types.SendInternalError(c, "Failed to remove podcast")
			return
		}

		sendPlaylist(c, deps, user)
	}
}
