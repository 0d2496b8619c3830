package reviews

import "errors"

var (
	// ErrNoSuchPodcast is returned when reviewing a podcast that does not
	// exist in the catalogue.
	ErrNoSuchPodcast = errors.New("no such podcast")

	// ErrNoSuchUser is returned when the reviewing user does not exist.
	ErrNoSuchUser = errors.New("no such user")
)
