package playlist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/auth"
	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
)

// currentUser resolves the authenticated account or writes the error
// response itself.
func currentUser(c *gin.Context, deps *types.Dependencies) (*models.User, bool) {
	username, ok := auth.CurrentUsername(c)
	if !ok {
		types.SendUnauthorized(c, "Not authenticated")
		return nil, false
	}

	user, err := deps.AccountService.GetUser(c.Request.Context(), username)
	if err != nil {
		types.SendUnauthorized(c, "Not authenticated")
		return nil, false
	}
	return user, true
}

// sendPlaylist writes the user's playlist together with the recently-added
// markers so the client can highlight the newest entry.
func sendPlaylist(c *gin.Context, deps *types.Dependencies, user *models.User) {
	pl, err := deps.Repo.GetPlaylist(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, catalogue.ErrNoPlaylist) {
			types.SendNotFound(c, "Playlist not found")
			return
		}
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to load playlist")
		types.SendInternalError(c, "Failed to load playlist")
		return
	}

	c.JSON(http.StatusOK, types.PlaylistResponse{
		BaseResponse:         types.BaseResponse{Status: types.StatusOK},
		Playlist:             types.FromPlaylist(pl),
		RecentlyAddedEpisode: deps.Repo.RecentlyAddedEpisode(),
		RecentlyAddedPodcast: deps.Repo.RecentlyAddedPodcast(),
	})
}

// Get returns the authenticated user's playlist
// @Summary      Get the user's playlist
// @Tags         playlist
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.PlaylistResponse "Playlist with highlight markers"
// @Failure      401 {object} types.ErrorResponse "Not authenticated"
// @Failure      404 {object} types.ErrorResponse "No playlist"
// @Router       /api/v1/playlist [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, deps)
		if !ok {
			return
		}
		sendPlaylist(c, deps, user)
	}
}
