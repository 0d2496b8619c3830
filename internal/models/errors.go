package models

import "errors"

var (
	errNilAuthor  = errors.New("podcast requires an author")
	errNilUser    = errors.New("expected a user")
	errNilPodcast = errors.New("expected a podcast")

	// ErrEpisodeNotInPlaylist is returned when removing an episode that is
	// not a member of the playlist.
	ErrEpisodeNotInPlaylist = errors.New("episode not in playlist")

	// ErrPodcastNotInPlaylist is returned when removing a podcast that is
	// not a member of the playlist.
	ErrPodcastNotInPlaylist = errors.New("podcast not in playlist")
)
