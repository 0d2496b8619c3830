package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/services/accounts"
)

// Me returns the authenticated user's profile with their reviews
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.UserResponse "Profile"
// @Failure      401 {object} types.ErrorResponse "Not authenticated"
// @Router       /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := CurrentUsername(c)
		if !ok {
			types.SendUnauthorized(c, "Not authenticated")
			return
		}

		user, err := deps.AccountService.GetUser(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, accounts.ErrUnknownUser) {
				types.SendUnauthorized(c, "Not authenticated")
				return
			}
			log.Error().Err(err).Str("username", username).Msg("Failed to load profile")
			types.SendInternalError(c, "Failed to load profile")
			return
		}

		reviews, err := deps.ReviewService.ReviewsByUser(c.Request.Context(), username)
		if err != nil {
			log.Error().Err(err).Str("username", username).Msg("Failed to load user reviews")
			types.SendInternalError(c, "Failed to load user reviews")
			return
		}

		c.JSON(http.StatusOK, types.UserResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			User:         types.FromUser(user),
			Reviews:      types.FromReviews(reviews),
		})
	}
}
