package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
)

// Get returns all catalogue categories ordered by name
// @Summary      List categories
// @Description  Category names are normalized at ingestion: trimmed,
// @Description  case-folded and listed once regardless of source spelling.
// @Tags         categories
// @Produce      json
// @Success      200 {object} types.CategoriesResponse "All categories"
// @Router       /api/v1/categories [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := deps.Repo.GetCategories(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to list categories")
			types.SendInternalError(c, "Failed to list categories")
			return
		}

		c.JSON(http.StatusOK, types.CategoriesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Categories:   types.FromCategories(categories),
			Count:        len(categories),
		})
	}
}

// GetPodcasts returns every podcast carrying the category
// @Summary      List podcasts in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category id" minimum(1)
// @Success      200 {object} types.PodcastsResponse "Podcasts in the category"
// @Failure      400 {object} types.ErrorResponse "Invalid category id"
// @Router       /api/v1/categories/{id}/podcasts [get]
func GetPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := types.ParseIntParam(c, "id")
		if !ok {
			return
		}

		podcasts, err := deps.Repo.SearchPodcastByCategoryID(c.Request.Context(), categoryID)
		if err != nil {
			log.Error().Err(err).Int("category_id", categoryID).Msg("Failed to list category podcasts")
			types.SendInternalError(c, "Failed to list category podcasts")
			return
		}

		c.JSON(http.StatusOK, types.PodcastsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Podcasts:     types.FromPodcasts(podcasts),
			Count:        len(podcasts),
		})
	}
}
