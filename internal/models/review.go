package models

import "strings"

// NoCommentSentinel replaces blank review comments instead of rejecting the
// review.
const NoCommentSentinel = "No comment."

// Review is a user's rating and comment on a podcast.
type Review struct {
	ID        int      `json:"id" gorm:"primaryKey"`
	Rating    int      `json:"rating"`
	Comment   string   `json:"comment"`
	UserID    int      `json:"-" gorm:"index"`
	User      *User    `json:"-"`
	PodcastID int      `json:"podcast_id" gorm:"index"`
	Podcast   *Podcast `json:"-"`
}

// NewReview validates, coerces and constructs a Review. Construction does
// not touch the podcast or user; registering the review into their lists
// is the review service's job. Malformed input is recovered, not rejected:
// a blank comment becomes NoCommentSentinel and a non-positive rating is
// folded to max(|rating|, 1).
func NewReview(id, rating int, comment string, user *User, podcast *Podcast) (*Review, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNilUser
	}
	if podcast == nil {
		return nil, errNilPodcast
	}
	if strings.TrimSpace(comment) == "" {
		comment = NoCommentSentinel
	}
	if rating < 0 {
		rating = -rating
	}
	if rating == 0 {
		rating = 1
	}
	r := &Review{
		ID:        id,
		Rating:    rating,
		Comment:   comment,
		UserID:    user.ID,
		User:      user,
		PodcastID: podcast.ID,
		Podcast:   podcast,
	}
	return r, nil
}

// Equal compares reviews by id, author and podcast.
func (r *Review) Equal(other *Review) bool {
	if other == nil {
		return false
	}
	return r.ID == other.ID && r.UserID == other.UserID && r.PodcastID == other.PodcastID
}
