package podcasts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
	"github.com/castlog/catalogue-api/internal/services/ingest"
	"github.com/castlog/catalogue-api/internal/services/reviews"
)

type stubReader struct {
	podcasts []ingest.Row
	episodes []ingest.Row
}

func (s *stubReader) Podcasts() ([]ingest.Row, error) { return s.podcasts, nil }
func (s *stubReader) Episodes() ([]ingest.Row, error) { return s.episodes, nil }

func setupRouter(t *testing.T) (*gin.Engine, *catalogue.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := catalogue.NewMemoryRepository()
	reader := &stubReader{
		podcasts: []ingest.Row{
			{"id": "101", "title": "D-Hour Radio Network", "author": "D Hour Radio Network", "categories": "Society & Culture", "language": "English"},
			{"id": "102", "title": "Brian Denny Radio", "author": "Brian Denny", "categories": "Comedy", "language": "English"},
		},
		episodes: []ingest.Row{
			{"id": "1", "podcast_id": "101", "title": "Episode 74", "audio": "http://a.mp3", "audio_length": "100", "pub_date": "2017-12-01 00:09:47+00"},
		},
	}
	require.NoError(t, repo.LoadData(context.Background(), reader))

	deps := &types.Dependencies{
		Repo:          repo,
		ReviewService: reviews.NewService(repo),
	}

	router := gin.New()
	group := router.Group("/api/v1/podcasts")
	RegisterRoutes(group, deps)
	return router, repo
}

func TestGetAll(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.PodcastsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	require.Len(t, resp.Podcasts, 2)
	assert.Equal(t, "Brian Denny Radio", resp.Podcasts[0].Title)
	assert.Equal(t, 2, resp.Total)
}

func TestGetAllPagination(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts?limit=1&offset=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.PodcastsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Podcasts, 1)
	assert.Equal(t, "D-Hour Radio Network", resp.Podcasts[0].Title)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Offset)
}

func TestGetPodcast(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/101", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.SinglePodcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Podcast)
	assert.Equal(t, "D-Hour Radio Network", resp.Podcast.Title)
	assert.Equal(t, "D Hour Radio Network", resp.Podcast.Author)
}

func TestGetPodcastNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPodcastInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEpisodes(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/101/episodes", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.EpisodesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Episodes, 1)
	assert.Equal(t, "Episode 74", resp.Episodes[0].Title)
	assert.Equal(t, "2017-12-01", resp.Episodes[0].PubDate)
}

func TestGetRating(t *testing.T) {
	router, repo := setupRouter(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/101/rating", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.RatingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, catalogue.NoRatingsSentinel, resp.AverageRating)

	user, err := models.NewUser(0, "simoncat", "hash")
	require.NoError(t, err)
	require.NoError(t, repo.AddUser(ctx, user))
	podcast, err := repo.GetPodcast(ctx, 101)
	require.NoError(t, err)
	review, err := models.NewReview(1, 8, "good", user, podcast)
	require.NoError(t, err)
	require.NoError(t, repo.AddReview(ctx, review))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/podcasts/101/rating", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "8.0", resp.AverageRating)
}

func TestGetReviews(t *testing.T) {
	router, repo := setupRouter(t)
	ctx := context.Background()

	user, err := models.NewUser(0, "simoncat", "hash")
	require.NoError(t, err)
	require.NoError(t, repo.AddUser(ctx, user))
	svc := reviews.NewService(repo)
	_, err = svc.AddReview(ctx, 101, "simoncat", "loved it", 9)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/podcasts/101/reviews", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ReviewsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "simoncat", resp.Reviews[0].Username)
	assert.Equal(t, "9.0", resp.AverageRating)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/podcasts/999/reviews", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
