package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

const defaultPageSize = 30

// GetAll returns the catalogue ordered by title, a page at a time
// @Summary      List catalogue podcasts
// @Description  Retrieve the full catalogue ordered alphabetically by title.
// @Description  Use limit and offset query parameters to page through results.
// @Tags         podcasts
// @Produce      json
// @Param        limit query int false "Page size" default(30)
// @Param        offset query int false "Start position" default(0)
// @Success      200 {object} types.PodcastsResponse "A page of podcasts"
// @Failure      500 {object} types.ErrorResponse "Failed to list podcasts"
// @Router       /api/v1/podcasts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := types.ParseIntQuery(c, "limit", defaultPageSize)
		offset := types.ParseIntQuery(c, "offset", 0)

		podcasts, err := deps.Repo.GetPodcasts(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to list podcasts")
			types.SendInternalError(c, "Failed to list podcasts")
			return
		}

		total := len(podcasts)
		if offset > total {
			offset = total
		}
		end := offset + limit
		if limit == 0 || end > total {
			end = total
		}
		page := podcasts[offset:end]

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromPodcasts(page),
			Count:        len(page),
			Total:        total,
			Offset:       offset,
		})
	}
}
