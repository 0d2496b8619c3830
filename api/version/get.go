package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castlog/catalogue-api/api/types"
)

// Get handles version requests. The build metadata is injected by the
// command layer where the ldflags variables live.
func Get(info types.VersionResponse) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	}
}
