package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/services/accounts"
)

// Register creates a new account
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body types.RegisterRequest true "Credentials"
// @Success      201 {object} types.AuthResponse "Account created"
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      409 {object} types.ErrorResponse "Username taken"
// @Router       /api/v1/auth/register [post]
func Register(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		user, err := deps.AccountService.Register(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, accounts.ErrNameNotUnique) {
				types.SendConflict(c, "That username is already taken")
				return
			}
			log.Error().Err(err).Str("username", req.Username).Msg("Failed to register user")
			types.SendInternalError(c, "Failed to register user")
			return
		}

		token, err := deps.AccountService.GenerateToken(user.Username)
		if err != nil {
			log.Error().Err(err).Str("username", user.Username).Msg("Failed to issue token")
			types.SendInternalError(c, "Failed to issue token")
			return
		}

		types.SendCreated(c, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Token:        token,
			User:         types.FromUser(user),
		})
	}
}
