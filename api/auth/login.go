package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/services/accounts"
)

// Login authenticates a user and issues a token
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body types.LoginRequest true "Credentials"
// @Success      200 {object} types.AuthResponse "Authenticated"
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      401 {object} types.ErrorResponse "Bad credentials"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		user, err := deps.AccountService.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, accounts.ErrAuthenticationFailed) {
				types.SendUnauthorized(c, "Invalid username or password")
				return
			}
			log.Error().Err(err).Str("username", req.Username).Msg("Failed to authenticate user")
			types.SendInternalError(c, "Failed to authenticate user")
			return
		}

		token, err := deps.AccountService.GenerateToken(user.Username)
		if err != nil {
			log.Error().Err(err).Str("username", user.Username).Msg("Failed to issue token")
			types.SendInternalError(c, "Failed to issue token")
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Token:        token,
			User:         types.FromUser(user),
		})
	}
}
