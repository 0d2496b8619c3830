package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/castlog/catalogue-api/api/types"
	"github.com/castlog/catalogue-api/internal/services/accounts"
	"github.com/castlog/catalogue-api/internal/services/catalogue"
	"github.com/castlog/catalogue-api/internal/services/ingest"
	"github.com/castlog/catalogue-api/internal/services/reviews"
	"github.com/castlog/catalogue-api/pkg/config"
)

type stubReader struct{}

func (s *stubReader) Podcasts() ([]ingest.Row, error) {
	return []ingest.Row{
		{"id": "101", "title": "D-Hour Radio Network", "author": "DHour Shows", "categories": "Society & Culture"},
		{"id": "102", "title": "Brian Denny Radio", "author": "Brian Denny", "categories": "Professional|News & Politics"},
	}, nil
}

func (s *stubReader) Episodes() ([]ingest.Row, error) {
	return []ingest.Row{{"id": "501", "podcast_id": "101", "title": "The Mandarian Orange Show"}}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, config.Init())

	repo := catalogue.NewMemoryRepository()
	require.NoError(t, repo.LoadData(context.Background(), &stubReader{}))

	server := NewServer("127.0.0.1:0")
	server.SetDependencies(&types.Dependencies{
		Repo:           repo,
		AccountService: accounts.NewService(repo, "test-secret", accounts.WithBcryptCost(bcrypt.MinCost)),
		ReviewService:  reviews.NewService(repo),
	})
	server.SetVersionInfo(types.VersionResponse{Version: "test"})
	require.NoError(t, server.Initialize())
	return server
}

func TestServerHealth(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerVersion(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test", resp.Version)
}

func TestServerNotFound(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Engine().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerBrowseRoutes(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{
		"/api/v1/podcasts",
		"/api/v1/podcasts/101",
		"/api/v1/categories",
		"/api/v1/authors",
		"/api/v1/charts/top",
		"/api/v1/search?q=radio",
	} {
		w := httptest.NewRecorder()
		server.Engine().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestServerAuthFlow(t *testing.T) {
	server := newTestServer(t)

	body := `{"username": "simon", "password": "Cats4Life"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The fresh playlist is reachable with the returned token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/playlist", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	server.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var pl types.PlaylistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pl))
	require.NotNil(t, pl.Playlist)
	assert.Equal(t, "simon's Playlist", pl.Playlist.Title)
}
