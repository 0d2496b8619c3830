package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	author, err := NewAuthor(1, "  Joe Toste  ")
	require.NoError(t, err)
	assert.Equal(t, 1, author.ID)
	assert.Equal(t, "Joe Toste", author.Name)

	_, err = NewAuthor(-1, "Joe Toste")
	assert.Error(t, err)

	_, err = NewAuthor(1, "   ")
	assert.Error(t, err)
}

func TestAuthor_AddPodcast(t *testing.T) {
	author, err := NewAuthor(1, "Audioboom")
	require.NoError(t, err)

	podcast, err := NewPodcast(100, author, "My Favorite Murder", "", "", "English", "", 0)
	require.NoError(t, err)

	author.AddPodcast(podcast)
	author.AddPodcast(podcast)
	assert.Len(t, author.Podcasts, 1)

	author.RemovePodcast(podcast)
	assert.Empty(t, author.Podcasts)

	// Removing a podcast that is not present is a no-op.
	author.RemovePodcast(podcast)
	assert.Empty(t, author.Podcasts)
}

func TestNewPodcast(t *testing.T) {
	author, err := NewAuthor(1, "D Hour Radio Network")
	require.NoError(t, err)

	podcast, err := NewPodcast(1, author, "D-Hour Radio Network", "http://example.com/image.jpg", "Radio", "English", "http://example.com", 538283940)
	require.NoError(t, err)
	assert.Equal(t, 1, podcast.ID)
	assert.Equal(t, author, podcast.Author)
	assert.Equal(t, author.ID, podcast.AuthorID)
	assert.Equal(t, 538283940, podcast.ITunesID)

	_, err = NewPodcast(1, nil, "Title", "", "", "", "", 0)
	assert.Error(t, err)

	_, err = NewPodcast(1, author, "", "", "", "", "", 0)
	assert.Error(t, err)

	_, err = NewPodcast(-5, author, "Title", "", "", "", "", 0)
	assert.Error(t, err)
}

func TestPodcast_AddCategory(t *testing.T) {
	author, _ := NewAuthor(1, "Author")
	podcast, err := NewPodcast(1, author, "Title", "", "", "English", "", 0)
	require.NoError(t, err)

	comedy, _ := NewCategory(1, "Comedy")
	tvFilm, _ := NewCategory(2, "Tv & film")

	podcast.AddCategory(comedy)
	podcast.AddCategory(comedy)
	podcast.AddCategory(tvFilm)
	assert.Len(t, podcast.Categories, 2)
	assert.True(t, podcast.HasCategory(comedy.ID))
	assert.False(t, podcast.HasCategory(99))
}

func TestPodcast_AddEpisode(t *testing.T) {
	author, _ := NewAuthor(1, "Author")
	podcast, err := NewPodcast(1, author, "Title", "", "", "English", "", 0)
	require.NoError(t, err)

	episode := NewEpisode(10, podcast, "Episode One", 120, "2017-12-01 00:09:47+00", "", "http://example.com/1.mp3")
	podcast.AddEpisode(episode)
	podcast.AddEpisode(episode)
	assert.Len(t, podcast.Episodes, 1)
}

func TestNewEpisode_TruncatesPubDate(t *testing.T) {
	episode := NewEpisode(1, nil, "Title", 100, "2017-12-01 00:09:47+00", "desc", "http://example.com/a.mp3")
	assert.Equal(t, "2017-12-01", episode.PubDate)

	short := NewEpisode(2, nil, "Title", 100, "Unknown", "desc", "")
	assert.Equal(t, "Unknown", short.PubDate)
}
