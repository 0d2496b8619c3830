package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// PodcastsResponse for podcast lists
type PodcastsResponse struct {
	BaseResponse
	Podcasts []Podcast `json:"podcasts"`
	Count    int       `json:"count"`
	Total    int       `json:"total,omitempty"`
	Offset   int       `json:"offset,omitempty"`
}

// SinglePodcastResponse for getting a single podcast
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *Podcast `json:"podcast"`
}

// PodcastSearchResponse for search endpoints
type PodcastSearchResponse struct {
	BaseResponse
	Podcasts []Podcast `json:"podcasts"`
	Query    string    `json:"query"`
	Count    int       `json:"count"`
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode `json:"episodes"`
	Count    int       `json:"count"`
}

// CategoriesResponse for the category listing
type CategoriesResponse struct {
	BaseResponse
	Categories []Category `json:"categories"`
	Count      int        `json:"count"`
}

// AuthorsResponse for the author listing
type AuthorsResponse struct {
	BaseResponse
	Authors []Author `json:"authors"`
	Count   int      `json:"count"`
}

// RatingResponse carries a podcast's formatted average rating
type RatingResponse struct {
	BaseResponse
	PodcastID     int    `json:"podcastId"`
	AverageRating string `json:"averageRating"`
}

// ReviewsResponse for review lists
type ReviewsResponse struct {
	BaseResponse
	Reviews       []Review `json:"reviews"`
	AverageRating string   `json:"averageRating,omitempty"`
	Count         int      `json:"count"`
}

// SingleReviewResponse for a created review
type SingleReviewResponse struct {
	BaseResponse
	Review *Review `json:"review"`
}

// PlaylistResponse for the playlist endpoints. RecentlyAddedEpisode and
// RecentlyAddedPodcast are -1 when nothing was added this session.
type PlaylistResponse struct {
	BaseResponse
	Playlist             *Playlist `json:"playlist"`
	RecentlyAddedEpisode int       `json:"recentlyAddedEpisode"`
	RecentlyAddedPodcast int       `json:"recentlyAddedPodcast"`
}

// ChartsResponse for the charts endpoint
type ChartsResponse struct {
	BaseResponse
	Charts []Chart `json:"charts"`
	Count  int     `json:"count"`
}

// AuthResponse for register and login
type AuthResponse struct {
	BaseResponse
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// UserResponse for the profile endpoint
type UserResponse struct {
	BaseResponse
	User    *User    `json:"user"`
	Reviews []Review `json:"reviews,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string         `json:"version,omitempty"`
	Database map[string]any `json:"database,omitempty"`
}

// VersionResponse for the version endpoint
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}
