package types

// Core data types used across API responses

// Podcast represents a catalogue podcast with essential fields
type Podcast struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	AuthorID    int      `json:"authorId,omitempty"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	Image       string   `json:"image,omitempty"`
	ITunesID    int      `json:"itunesId,omitempty"`
	Language    string   `json:"language,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Episodes    int      `json:"episodeCount,omitempty"`
}

// Episode represents a catalogue episode
type Episode struct {
	ID          int    `json:"id"`
	PodcastID   int    `json:"podcastId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AudioLink   string `json:"audioLink"`
	AudioLength int    `json:"audioLength,omitempty"`
	PubDate     string `json:"pubDate,omitempty"`
}

// Category pairs a category id with its display name
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Author pairs an author id with their name
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Review represents a podcast review
type Review struct {
	ID        int    `json:"id"`
	PodcastID int    `json:"podcastId"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// Playlist represents a user's playlist with its entries
type Playlist struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Episodes    []Episode `json:"episodes"`
	Podcasts    []Podcast `json:"podcasts"`
}

// User represents a public view of an account
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Chart represents a ranked slice of the catalogue
type Chart struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Podcasts []Podcast `json:"podcasts"`
}
