package types

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	upperCasePattern = regexp.MustCompile(`[A-Z]`)
	lowerCasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the registration payload. The password policy follows the
// registration form: at least 7 characters with an upper case letter, a
// lower case letter and a digit.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(7, 0),
			validation.Match(upperCasePattern).Error("must contain an upper case letter"),
			validation.Match(lowerCasePattern).Error("must contain a lower case letter"),
			validation.Match(digitPattern).Error("must contain a digit"),
		),
	)
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the login payload
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// ReviewRequest represents a review submission. The target podcast comes
// from the URL path.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate checks the review payload. Comment and rating coercion happens
// in the domain layer, so only the comment size is bounded here.
func (r ReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment, validation.Length(0, 2000)),
	)
}

// PlaylistEpisodeRequest names an episode to add or remove
type PlaylistEpisodeRequest struct {
	EpisodeID int `json:"episodeId"`
}

// Validate checks the playlist episode payload
func (r PlaylistEpisodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EpisodeID, validation.Required, validation.Min(1)),
	)
}

// PlaylistPodcastRequest names a podcast to add or remove
type PlaylistPodcastRequest struct {
	PodcastID int `json:"podcastId"`
}

// Validate checks the playlist podcast payload
func (r PlaylistPodcastRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PodcastID, validation.Required, validation.Min(1)),
	)
}
