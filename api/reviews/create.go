package reviews

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/castlog/catalogue-api/api/auth"
	"github.com/castlog/catalogue-api/api/types"
	reviewsvc "github.com/castlog/catalogue-api/internal/services/reviews"
)

// Create submits a review for a podcast
// @Summary      Review a podcast
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast id" minimum(1)
// @Param        body body types.ReviewRequest true "Review"
// @Success      201 {object} types.SingleReviewResponse "Stored review"
// @Failure      400 {object} types.ErrorResponse "Invalid payload"
// @Failure      404 {object} types.ErrorResponse "Unknown podcast"
// @Router       /api/v1/podcasts/{id}/reviews [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := auth.CurrentUsername(c)
		if !ok {
			types.SendUnauthorized(c, "Not authenticated")
			return
		}

		podcastID, ok := types.ParseIntParam(c, "id")
		if !ok {
			return
		}

		var req types.ReviewRequest
		if !types.BindValidatedJSON(c, &req) {
			return
		}

		review, err := deps.ReviewService.AddReview(c.Request.Context(), podcastID, username, req.Comment, req.Rating)
		if err != nil {
			switch {
			case errors.Is(err, reviewsvc.ErrNoSuchPodcast):
				types.SendNotFound(c, "Podcast not found")
			case errors.Is(err, reviewsvc.ErrNoSuchUser):
				types.SendUnauthorized(c, "Not authenticated")
			default:
				log.Error().Err(err).Int("podcast_id", podcastID).Msg("Failed to store review")
				types.SendInternalError(c, "Failed to store review")
			}
			return
		}

		types.SendCreated(c, types.SingleReviewResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Review:       types.FromReview(review),
		})
	}
}
