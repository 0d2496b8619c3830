package catalogue

import "errors"

// NoRatingsSentinel is the literal returned by GetAverageRating for a
// podcast without reviews. Kept as a string for compatibility with the
// rendered rating field.
const NoRatingsSentinel = "No ratings yet!"

// NoMarker is the recently-added slot value meaning "nothing yet".
const NoMarker = -1

var (
	// ErrNoPlaylist is the hard failure for a playlist lookup on a user
	// without one; every registered user should own exactly one.
	ErrNoPlaylist = errors.New("user does not have a playlist")

	// ErrAlreadyLoaded rejects a second LoadData on the in-memory store.
	ErrAlreadyLoaded = errors.New("catalogue data already loaded")
)
