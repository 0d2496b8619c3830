package models

import "strings"

// User is an account holder. The username is the business key and is stored
// lowercased and trimmed; the surrogate id is assigned by the repository.
// Password holds an already-hashed credential, never plaintext.
type User struct {
	ID            int                    `json:"id" gorm:"primaryKey"`
	Username      string                 `json:"username" gorm:"uniqueIndex;not null"`
	Password      string                 `json:"-" gorm:"not null"`
	Subscriptions []*PodcastSubscription `json:"-" gorm:"foreignKey:OwnerID"`
	Reviews       []*Review              `json:"-" gorm:"foreignKey:UserID"`
	Playlists     []*Playlist            `json:"-" gorm:"foreignKey:UserID"`
}

// NewUser validates and constructs a User with a normalized username.
func NewUser(id int, username, password string) (*User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(username, "username"); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(password, "password"); err != nil {
		return nil, err
	}
	return &User{
		ID:       id,
		Username: strings.ToLower(strings.TrimSpace(username)),
		Password: password,
	}, nil
}

// AddSubscription appends a subscription, skipping ones already held.
func (u *User) AddSubscription(s *PodcastSubscription) {
	for _, existing := range u.Subscriptions {
		if existing.Equal(s) {
			return
		}
	}
	u.Subscriptions = append(u.Subscriptions, s)
}

// RemoveSubscription drops a subscription if present.
func (u *User) RemoveSubscription(s *PodcastSubscription) {
	for i, existing := range u.Subscriptions {
		if existing.Equal(s) {
			u.Subscriptions = append(u.Subscriptions[:i], u.Subscriptions[i+1:]...)
			return
		}
	}
}

// AddReview appends a review. Append-only, duplicates permitted.
func (u *User) AddReview(r *Review) {
	u.Reviews = append(u.Reviews, r)
}

// AddPlaylist appends a playlist, skipping ones already held.
func (u *User) AddPlaylist(p *Playlist) {
	for _, existing := range u.Playlists {
		if existing.ID == p.ID {
			return
		}
	}
	u.Playlists = append(u.Playlists, p)
}

// RemovePlaylist drops a playlist if present.
func (u *User) RemovePlaylist(p *Playlist) {
	for i, existing := range u.Playlists {
		if existing.ID == p.ID {
			u.Playlists = append(u.Playlists[:i], u.Playlists[i+1:]...)
			return
		}
	}
}

// PodcastSubscription is an optional favoriting relation between a user and
// a podcast, deduplicated per user.
type PodcastSubscription struct {
	ID        int      `json:"id" gorm:"primaryKey"`
	OwnerID   int      `json:"-" gorm:"index"`
	Owner     *User    `json:"-"`
	PodcastID int      `json:"-"`
	Podcast   *Podcast `json:"podcast"`
}

// NewPodcastSubscription validates and constructs a PodcastSubscription.
func NewPodcastSubscription(id int, owner *User, podcast *Podcast) (*PodcastSubscription, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errNilUser
	}
	if podcast == nil {
		return nil, errNilPodcast
	}
	return &PodcastSubscription{
		ID:        id,
		OwnerID:   owner.ID,
		Owner:     owner,
		PodcastID: podcast.ID,
		Podcast:   podcast,
	}, nil
}

// Equal compares subscriptions by id, owner and podcast.
func (s *PodcastSubscription) Equal(other *PodcastSubscription) bool {
	if other == nil {
		return false
	}
	return s.ID == other.ID && s.OwnerID == other.OwnerID && s.PodcastID == other.PodcastID
}
