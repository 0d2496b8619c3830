package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// usernameKey is the gin context key the middleware stores the
// authenticated username under.
const usernameKey = "username"

// RequireAuth validates the Bearer token and stores the username in the
// request context for downstream handlers.
func RequireAuth(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			types.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			types.SendUnauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		username, err := deps.AccountService.ParseToken(parts[1])
		if err != nil {
			types.SendUnauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// CurrentUsername returns the username stored by RequireAuth.
func CurrentUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(usernameKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok && username != ""
}
