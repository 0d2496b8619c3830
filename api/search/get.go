package search

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
)

// Get searches the catalogue by title, author name or category name
// @Summary      Search podcasts
// @Description  Case-insensitive substring search. Title matches rank first,
// @Description  then author matches, then category matches; duplicates are
// @Description  dropped keeping the best rank. Alternatively filter by an
// @Description  exact category_id or author_id.
// @Tags         search
// @Produce      json
// @Param        q query string false "Search term" example("comedy")
// @Param        category_id query int false "Exact category filter"
// @Param        author_id query int false "Exact author filter"
// @Success      200 {object} types.PodcastSearchResponse "Ranked matches"
// @Failure      400 {object} types.ErrorResponse "Missing search term"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))

		var (
			results []*models.Podcast
			err     error
		)
		switch {
		case query != "":
			results, err = deps.Repo.SearchPodcastsByQuery(c.Request.Context(), query)
		case c.Query("category_id") != "":
			var id int
			id, err = strconv.Atoi(c.Query("category_id"))
			if err != nil {
				types.SendBadRequest(c, "Invalid category_id")
				return
			}
			results, err = deps.Repo.SearchPodcastByCategoryID(c.Request.Context(), id)
		case c.Query("author_id") != "":
			var id int
			id, err = strconv.Atoi(c.Query("author_id"))
			if err != nil {
				types.SendBadRequest(c, "Invalid author_id")
				return
			}
			results, err = deps.Repo.SearchPodcastByAuthorID(c.Request.Context(), id)
		default:
			types.SendBadRequest(c, "Missing search term")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("query", query).Msg("Search failed")
			types.SendInternalError(c, "Search failed")
			return
		}

		c.JSON(http.StatusOK, types.PodcastSearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromPodcasts(results),
			Query:        query,
			Count:        len(results),
		})
	}
}
