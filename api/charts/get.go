package charts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
)

// Fixed positions into the title-sorted catalogue. Charts are ephemeral
// promotional shelves, not computed rankings, so the picks are editorial.
var (
	trendingPicks = []int{139, 1, 2, 3, 4}
	editorsPicks  = []int{93, 77, 2, 3, 4}
)

// GetTop returns the promotional charts for the catalogue home view
// @Summary      Promotional charts
// @Tags         charts
// @Produce      json
// @Success      200 {object} types.ChartsResponse "Trending and editor charts"
// @Router       /api/v1/charts/top [get]
func GetTop(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcasts, err := deps.Repo.GetPodcasts(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to build charts")
			types.SendInternalError(c, "Failed to build charts")
			return
		}

		charts := []*models.Chart{
			models.NewChart(1, "Trending Now", pickAt(podcasts, trendingPicks)),
			models.NewChart(2, "Editor's Picks", pickAt(podcasts, editorsPicks)),
		}

		out := make([]types.Chart, 0, len(charts))
		for _, chart := range charts {
			out = append(out, types.FromChart(chart))
		}

		c.JSON(http.StatusOK, types.ChartsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Charts:       out,
			Count:        len(out),
		})
	}
}

// pickAt selects podcasts by position, skipping positions past the end so
// small catalogues still chart whatever they have.
func pickAt(podcasts []*models.Podcast, positions []int) []*models.Podcast {
	picked := make([]*models.Podcast, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(podcasts) {
			continue
		}
		picked = append(picked, podcasts[pos])
	}
	return picked
}
