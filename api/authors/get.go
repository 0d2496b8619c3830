package authors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

// Get returns all catalogue authors
// @Summary      List authors
// @Tags         authors
// @Produce      json
// @Success      200 {object} types.AuthorsResponse "All authors"
// @Router       /api/v1/authors [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		authors, err := deps.Repo.GetAuthors(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to list authors")
			types.SendInternalError(c, "Failed to list authors")
			return
		}

		c.JSON(http.StatusOK, types.AuthorsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Authors:      types.FromAuthors(authors),
			Count:        len(authors),
		})
	}
}

// GetPodcasts returns every podcast by the author
// @Summary      List podcasts by an author
// @Tags         authors
// @Produce      json
// @Param        id path int true "Author id" minimum(1)
// @Success      200 {object} types.PodcastsResponse "Podcasts by the author"
// @Failure      400 {object} types.ErrorResponse "Invalid author id"
// @Router       /api/v1/authors/{id}/podcasts [get]
func GetPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorID, ok := types.ParseIntParam(c, "id")
		if !ok {
			return
		}

		podcasts, err := deps.Repo.SearchPodcastByAuthorID(c.Request.Context(), authorID)
		if err != nil {
			log.Error().Err(err).Int("author_id", authorID).Msg("Failed to list author podcasts")
			types.SendInternalError(c, "Failed to list author podcasts")
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromPodcasts(podcasts),
			Count:        len(podcasts),
		})
	}
}
