package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistFixtures(t *testing.T) (*Playlist, *Episode, *Podcast) {
	t.Helper()
	user, err := NewUser(1, "simoncat", "pw12345")
	require.NoError(t, err)
	playlist, err := NewPlaylist(1, user, "simoncat's Playlist", "Save episodes and whole playlists to watch later!")
	require.NoError(t, err)
	author, err := NewAuthor(1, "Author")
	require.NoError(t, err)
	podcast, err := NewPodcast(10, author, "Some Podcast", "", "", "English", "", 0)
	require.NoError(t, err)
	episode := NewEpisode(5, podcast, "Episode Five", 300, "2020-01-01", "", "http://example.com/5.mp3")
	return playlist, episode, podcast
}

func TestPlaylist_AddAllowsDuplicates(t *testing.T) {
	playlist, episode, podcast := playlistFixtures(t)

	playlist.AddEpisode(episode)
	playlist.AddEpisode(episode)
	assert.Len(t, playlist.Episodes, 2)

	playlist.AddPodcast(podcast)
	playlist.AddPodcast(podcast)
	assert.Len(t, playlist.Podcasts, 2)
}

func TestPlaylist_DeleteRemovesFirstMatch(t *testing.T) {
	playlist, episode, podcast := playlistFixtures(t)

	playlist.AddEpisode(episode)
	playlist.AddEpisode(episode)
	require.NoError(t, playlist.DeleteEpisode(episode))
	assert.Len(t, playlist.Episodes, 1)

	playlist.AddPodcast(podcast)
	require.NoError(t, playlist.DeletePodcast(podcast))
	assert.Empty(t, playlist.Podcasts)
}

func TestPlaylist_DeleteMissingFails(t *testing.T) {
	playlist, episode, podcast := playlistFixtures(t)

	err := playlist.DeleteEpisode(episode)
	assert.ErrorIs(t, err, ErrEpisodeNotInPlaylist)
	assert.Empty(t, playlist.Episodes)

	err = playlist.DeletePodcast(podcast)
	assert.ErrorIs(t, err, ErrPodcastNotInPlaylist)
}

func TestPlaylist_AddDeleteRoundTrip(t *testing.T) {
	playlist, episode, _ := playlistFixtures(t)

	playlist.AddEpisode(episode)
	require.NoError(t, playlist.DeleteEpisode(episode))
	assert.Empty(t, playlist.Episodes)
}

func TestPlaylist_Merge(t *testing.T) {
	playlist, episode, podcast := playlistFixtures(t)

	user, err := NewUser(2, "other", "pw12345")
	require.NoError(t, err)
	other, err := NewPlaylist(2, user, "other's Playlist", "")
	require.NoError(t, err)
	other.AddEpisode(episode)
	other.AddPodcast(podcast)

	playlist.Merge(other)
	assert.Len(t, playlist.Episodes, 1)
	assert.Len(t, playlist.Podcasts, 1)
}

func TestNewUser_NormalizesUsername(t *testing.T) {
	user, err := NewUser(0, "  SimonCat  ", "hashedpw")
	require.NoError(t, err)
	assert.Equal(t, "simoncat", user.Username)

	_, err = NewUser(0, "  ", "hashedpw")
	assert.Error(t, err)

	_, err = NewUser(0, "simoncat", "")
	assert.Error(t, err)
}

func TestUser_AddSubscriptionDeduplicates(t *testing.T) {
	user, err := NewUser(1, "simoncat", "pw")
	require.NoError(t, err)
	author, _ := NewAuthor(1, "Author")
	podcast, err := NewPodcast(10, author, "Some Podcast", "", "", "English", "", 0)
	require.NoError(t, err)

	sub, err := NewPodcastSubscription(1, user, podcast)
	require.NoError(t, err)

	user.AddSubscription(sub)
	user.AddSubscription(sub)
	assert.Len(t, user.Subscriptions, 1)

	user.RemoveSubscription(sub)
	assert.Empty(t, user.Subscriptions)
}

func TestNewChart(t *testing.T) {
	author, _ := NewAuthor(1, "Author")
	p1, _ := NewPodcast(1, author, "One", "", "", "English", "", 0)
	p2, _ := NewPodcast(2, author, "Two", "", "", "English", "", 0)

	chart := NewChart(1, "Top Podcasts", []*Podcast{p1, p2})
	assert.Equal(t, "Top Podcasts", chart.Title)
	assert.Len(t, chart.Podcasts, 2)
}
