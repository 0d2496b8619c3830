package catalogue

import (
	"context"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/ingest"
)

// Repository is the single point of access to every entity collection. The
// in-memory and the database-backed implementations satisfy identical
// semantics.
//
// Single-entity lookups (GetPodcast, GetEpisode, GetUser, GetReview) return
// (nil, nil) when the id is absent: absence is legitimate and callers must
// nil-check. GetPlaylist is the deliberate exception: every user is expected
// to own exactly one playlist, so a miss surfaces ErrNoPlaylist.
type Repository interface {
	// LoadData performs the one-shot ingestion. The in-memory variant
	// accepts it exactly once per process; the database variant only
	// repopulates an empty store.
	LoadData(ctx context.Context, reader ingest.CatalogueReader) error

	GetPodcast(ctx context.Context, id int) (*models.Podcast, error)
	GetPodcasts(ctx context.Context) ([]*models.Podcast, error)
	GetEpisode(ctx context.Context, id int) (*models.Episode, error)
	GetEpisodesByPodcastID(ctx context.Context, podcastID int) ([]*models.Episode, error)
	GetAuthors(ctx context.Context) ([]*models.Author, error)
	GetCategories(ctx context.Context) ([]*models.Category, error)

	SearchPodcastsByQuery(ctx context.Context, query string) ([]*models.Podcast, error)
	SearchPodcastByCategoryID(ctx context.Context, categoryID int) ([]*models.Podcast, error)
	SearchPodcastByAuthorID(ctx context.Context, authorID int) ([]*models.Podcast, error)

	AddUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)

	CreatePlaylist(ctx context.Context, user *models.User) error
	GetPlaylist(ctx context.Context, user *models.User) (*models.Playlist, error)
	AddEpisodeToPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error
	AddPodcastToPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error
	DeleteEpisodeFromPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error
	DeletePodcastFromPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error

	AddReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id int) (*models.Review, error)
	GetAllReviews(ctx context.Context) ([]*models.Review, error)
	GetReviewsByPodcast(ctx context.Context, podcastID int) ([]*models.Review, error)
	GetUserReviews(ctx context.Context, username string) ([]*models.Review, error)
	GetAverageRating(ctx context.Context, podcastID int) (string, error)

	// Recently-added markers are a repository-wide single slot, not scoped
	// per user or session, so concurrent users observe each other's last
	// action.
	SetRecentlyAddedEpisode(episodeID int)
	RecentlyAddedEpisode() int
	SetRecentlyAddedPodcast(podcastID int)
	RecentlyAddedPodcast() int
}
