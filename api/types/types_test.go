package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlog/catalogue-api/internal/models"
)

func TestFromPodcast(t *testing.T) {
	author, err := models.NewAuthor(1, "Brian Denny")
	require.NoError(t, err)
	podcast, err := models.NewPodcast(102, author, "Brian Denny Radio", "img.jpg", "5-in-1 morning show", "English", "http://bdradio.example", 1132261215)
	require.NoError(t, err)
	comedy, err := models.NewCategory(1, "Comedy")
	require.NoError(t, err)
	podcast.AddCategory(comedy)
	podcast.AddEpisode(models.NewEpisode(1, podcast, "Ep 1", 100, "2017-12-01", "first", "http://a.mp3"))

	dto := FromPodcast(podcast)
	require.NotNil(t, dto)
	assert.Equal(t, 102, dto.ID)
	assert.Equal(t, "Brian Denny", dto.Author)
	assert.Equal(t, []string{"Comedy"}, dto.Categories)
	assert.Equal(t, 1, dto.Episodes)

	assert.Nil(t, FromPodcast(nil))
}

func TestFromReview(t *testing.T) {
	author, err := models.NewAuthor(1, "Someone")
	require.NoError(t, err)
	podcast, err := models.NewPodcast(7, author, "A Show", "", "", "English", "", 0)
	require.NoError(t, err)
	user, err := models.NewUser(3, "simoncat", "hash")
	require.NoError(t, err)
	review, err := models.NewReview(1, 8, "great", user, podcast)
	require.NoError(t, err)

	dto := FromReview(review)
	require.NotNil(t, dto)
	assert.Equal(t, "simoncat", dto.Username)
	assert.Equal(t, 7, dto.PodcastID)
	assert.Equal(t, 8, dto.Rating)
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{name: "valid", request: RegisterRequest{Username: "simoncat", Password: "Cats4Life"}},
		{name: "missing username", request: RegisterRequest{Password: "Cats4Life"}, wantErr: true},
		{name: "too short", request: RegisterRequest{Username: "simoncat", Password: "Cat4"}, wantErr: true},
		{name: "no upper case", request: RegisterRequest{Username: "simoncat", Password: "cats4life"}, wantErr: true},
		{name: "no lower case", request: RegisterRequest{Username: "simoncat", Password: "CATS4LIFE"}, wantErr: true},
		{name: "no digit", request: RegisterRequest{Username: "simoncat", Password: "CatsForLife"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewRequestValidate(t *testing.T) {
	assert.NoError(t, ReviewRequest{Rating: 5}.Validate())
	assert.NoError(t, ReviewRequest{Rating: 5, Comment: "Nice show"}.Validate())
	assert.Error(t, ReviewRequest{Comment: strings.Repeat("x", 2001)}.Validate())
}

func TestPlaylistRequestsValidate(t *testing.T) {
	assert.NoError(t, PlaylistEpisodeRequest{EpisodeID: 2}.Validate())
	assert.Error(t, PlaylistEpisodeRequest{}.Validate())
	assert.NoError(t, PlaylistPodcastRequest{PodcastID: 2}.Validate())
	assert.Error(t, PlaylistPodcastRequest{}.Validate())
}
