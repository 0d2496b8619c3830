package playlist

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
)

// AddEpisode saves an episode to the user's playlist
// @Summary      Add an episode to the playlist
// @Tags         playlist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.PlaylistEpisodeRequest true "Episode to save"
// @Success      200 {object} types.PlaylistResponse "Updated playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Unknown episode"
// @Router       /api/v1/playlist/episodes [post]
func AddEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, deps)
		if !ok {
			return
		}

		var req types.PlaylistEpisodeRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		episode, err := deps.Repo.GetEpisode(c.Request.Context(), req.EpisodeID)
		if err != nil {
			log.Error().Err(err).Int("episode_id", req.EpisodeID).Msg("Failed to fetch episode")
			types.SendInternalError(c, "Failed to fetch episode")
			return
		}
		if episode == nil {
			types.SendNotFound(c, "Episode not found")
			return
		}

		if err := deps.Repo.AddEpisodeToPlaylist(c.Request.Context(), episode, user); err != nil {
			log.Error().Err(err).Int("episode_id", req.EpisodeID).Msg("Failed to save episode")
			types.SendInternalError(c, "Failed to save episode")
			return
		}

		deps.Repo.SetRecentlyAddedEpisode(episode.ID)
		sendPlaylist(c, deps, user)
	}
}

// DeleteEpisode removes one saved copy of an episode from the playlist
// @Summary      Remove an episode from the playlist
// @Tags         playlist
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body types.PlaylistEpisodeRequest true "Episode to remove"
// @Success      200 {object} types.PlaylistResponse "Updated playlist"
// @Failure      404 {object} types.ErrorResponse "Episode not in the playlist"
// @Router       /api/v1/playlist/episodes [delete]
func DeleteEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, deps)
		if !ok {
			return
		}

		var req types.PlaylistEpisodeRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		episode, err := deps.Repo.GetEpisode(c.Request.Context(), req.EpisodeID)
		if err != nil {
			log.Error().Err(err).Int("episode_id", req.EpisodeID).Msg("Failed to fetch episode")
			types.SendInternalError(c, "Failed to fetch episode")
			return
		}
		if episode == nil {
			types.SendNotFound(c, "Episode not found")
			return
		}

		if err := deps.Repo.DeleteEpisodeFromPlaylist(c.Request.Context(), episode, user); err != nil {
			if errors.Is(err, models.ErrEpisodeNotInPlaylist) {
				types.SendNotFound(c, "Episode is not in the playlist")
				return
			}
			log.Error().Err(err).Int("episode_id", req.EpisodeID).Msg("Failed to remove episode")
			types.SendInternalError(c, "Failed to remove episode")
			return
		}

		sendPlaylist(c, deps, user)
	}
}
