package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
	"github.com/castlog/catalogue-api/internal/services/ingest"
)

type stubReader struct {
	podcasts []ingest.Row
	episodes []ingest.Row
}

func (s *stubReader) Podcasts() ([]ingest.Row, error) { return s.podcasts, nil }
func (s *stubReader) Episodes() ([]ingest.Row, error) { return s.episodes, nil }

func newTestService(t *testing.T) (*Service, *catalogue.MemoryRepository) {
	t.Helper()
	repo := catalogue.NewMemoryRepository()
	reader := &stubReader{
		podcasts: []ingest.Row{
			{"id": "1", "title": "Amazing Discoveries", "author": "Doreen Philips", "categories": "Science"},
		},
	}
	require.NoError(t, repo.LoadData(context.Background(), reader))

	user, err := models.NewUser(0, "simoncat", "hashed")
	require.NoError(t, err)
	require.NoError(t, repo.AddUser(context.Background(), user))

	return NewService(repo), repo
}

func TestServiceAddReview(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, 1, "simoncat", "Great listen", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, review.ID)
	assert.Equal(t, 7, review.Rating)
	assert.Equal(t, "Great listen", review.Comment)

	second, err := svc.AddReview(ctx, 1, "simoncat", "", -3)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, models.NoCommentSentinel, second.Comment)
	assert.Equal(t, 3, second.Rating)

	all, err := repo.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Stored reviews are registered into both owning aggregates.
	require.Len(t, review.Podcast.Reviews, 2)
	require.Len(t, review.User.Reviews, 2)
	assert.Same(t, review, review.Podcast.Reviews[0])
	assert.Same(t, second, review.User.Reviews[1])
}

func TestServiceAddReviewPreconditions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 42, "simoncat", "x", 5)
	assert.ErrorIs(t, err, ErrNoSuchPodcast)

	_, err = svc.AddReview(ctx, 1, "nobody", "x", 5)
	assert.ErrorIs(t, err, ErrNoSuchUser)
}

func TestServiceReviewsForPodcast(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	reviews, average, err := svc.ReviewsForPodcast(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Equal(t, catalogue.NoRatingsSentinel, average)

	_, err = svc.AddReview(ctx, 1, "simoncat", "solid", 5)
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, 1, "simoncat", "better", 8)
	require.NoError(t, err)

	reviews, average, err = svc.ReviewsForPodcast(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, "6.5", average)

	_, _, err = svc.ReviewsForPodcast(ctx, 42)
	assert.ErrorIs(t, err, ErrNoSuchPodcast)
}

func TestServiceReviewsByUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddReview(ctx, 1, "simoncat", "solid", 5)
	require.NoError(t, err)

	mine, err := svc.ReviewsByUser(ctx, "SimonCat")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.ReviewsByUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNoSuchUser)
}
