package catalogue

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/ingest"
)

// MemoryRepository holds every collection in process memory. The original
// store carried no synchronization at all; Go requires the lock for map and
// slice safety, the observable semantics (including the create-playlist
// check-then-act window between requests) are unchanged.
type MemoryRepository struct {
	mu     sync.RWMutex
	loaded bool

	podcasts  []*models.Podcast
	episodes  []*models.Episode
	users     []*models.User
	reviews   []*models.Review
	playlists []*models.Playlist

	authors          []*models.Author
	categories       []*models.Category
	authorsByName    map[string]*models.Author
	categoriesByName map[string]*models.Category

	recentEpisode int
	recentPodcast int
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		authorsByName:    make(map[string]*models.Author),
		categoriesByName: make(map[string]*models.Category),
		recentEpisode:    NoMarker,
		recentPodcast:    NoMarker,
	}
}

// LoadData ingests the catalogue. Callable exactly once per process.
func (r *MemoryRepository) LoadData(ctx context.Context, reader ingest.CatalogueReader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return ErrAlreadyLoaded
	}
	g, err := buildGraph(reader)
	if err != nil {
		return err
	}
	r.podcasts = g.podcasts
	r.episodes = g.episodes
	r.authors = g.authors
	r.categories = g.categories
	r.authorsByName = g.authorsByName
	r.categoriesByName = g.categoriesByName
	r.loaded = true
	return nil
}

func (r *MemoryRepository) GetPodcast(ctx context.Context, id int) (*models.Podcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.podcastByID(id), nil
}

func (r *MemoryRepository) podcastByID(id int) *models.Podcast {
	for _, podcast := range r.podcasts {
		if podcast.ID == id {
			return podcast
		}
	}
	return nil
}

func (r *MemoryRepository) GetPodcasts(ctx context.Context) ([]*models.Podcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedByTitle(r.podcasts), nil
}

func (r *MemoryRepository) GetEpisode(ctx context.Context, id int) (*models.Episode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, episode := range r.episodes {
		if episode.ID == id {
			return episode, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetEpisodesByPodcastID(ctx context.Context, podcastID int) ([]*models.Episode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	podcast := r.podcastByID(podcastID)
	if podcast == nil {
		return nil, nil
	}
	return podcast.Episodes, nil
}

func (r *MemoryRepository) GetAuthors(ctx context.Context) ([]*models.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Author, len(r.authors))
	copy(out, r.authors)
	return out, nil
}

// GetCategories returns the known categories ordered by name.
func (r *MemoryRepository) GetCategories(ctx context.Context) ([]*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Category, len(r.categories))
	copy(out, r.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepository) SearchPodcastsByQuery(ctx context.Context, query string) ([]*models.Podcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return rankSearchResults(r.podcasts, query), nil
}

// SearchPodcastByCategoryID returns every podcast carrying the category.
// An unknown id yields an empty result, never an error.
func (r *MemoryRepository) SearchPodcastByCategoryID(ctx context.Context, categoryID int) ([]*models.Podcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := []*models.Podcast{}
	for _, podcast := range r.podcasts {
		if podcast.HasCategory(categoryID) {
			results = append(results, podcast)
		}
	}
	return results, nil
}

func (r *MemoryRepository) SearchPodcastByAuthorID(ctx context.Context, authorID int) ([]*models.Podcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := []*models.Podcast{}
	for _, podcast := range r.podcasts {
		if podcast.Author != nil && podcast.Author.ID == authorID {
			results = append(results, podcast)
		}
	}
	return results, nil
}

// AddUser stores the user, assigning the next surrogate id.
func (r *MemoryRepository) AddUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = len(r.users)
	r.users = append(r.users, user)
	return nil
}

// GetUser resolves a user by username, case-insensitively.
func (r *MemoryRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.userByName(username), nil
}

func (r *MemoryRepository) userByName(username string) *models.User {
	username = strings.ToLower(username)
	for _, user := range r.users {
		if user.Username == username {
			return user
		}
	}
	return nil
}

func (r *MemoryRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// CreatePlaylist creates the user's playlist unless one already exists. The
// existence check is a scan over all playlists, not a storage constraint.
func (r *MemoryRepository) CreatePlaylist(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, playlist := range r.playlists {
		if playlist.UserID == user.ID {
			return nil
		}
	}
	playlist, err := models.NewPlaylist(len(r.playlists), user,
		user.Username+"'s Playlist",
		"Save episodes and whole playlists to watch later!")
	if err != nil {
		return err
	}
	r.playlists = append(r.playlists, playlist)
	user.AddPlaylist(playlist)
	return nil
}

func (r *MemoryRepository) GetPlaylist(ctx context.Context, user *models.User) (*models.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playlistFor(user)
}

func (r *MemoryRepository) playlistFor(user *models.User) (*models.Playlist, error) {
	for _, playlist := range r.playlists {
		if playlist.UserID == user.ID {
			return playlist, nil
		}
	}
	return nil, ErrNoPlaylist
}

func (r *MemoryRepository) AddEpisodeToPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	playlist, err := r.playlistFor(user)
	if err != nil {
		return err
	}
	playlist.AddEpisode(episode)
	return nil
}

func (r *MemoryRepository) AddPodcastToPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	playlist, err := r.playlistFor(user)
	if err != nil {
		return err
	}
	playlist.AddPodcast(podcast)
	return nil
}

func (r *MemoryRepository) DeleteEpisodeFromPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	playlist, err := r.playlistFor(user)
	if err != nil {
		return err
	}
	return playlist.DeleteEpisode(episode)
}

func (r *MemoryRepository) DeletePodcastFromPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	playlist, err := r.playlistFor(user)
	if err != nil {
		return err
	}
	return playlist.DeletePodcast(podcast)
}

// AddReview stores a fully-constructed review. Registration into the
// podcast's and user's own lists is the review service's job, not the
// repository's.
func (r *MemoryRepository) AddReview(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *MemoryRepository) GetReview(ctx context.Context, id int) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetAllReviews(ctx context.Context) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *MemoryRepository) GetReviewsByPodcast(ctx context.Context, podcastID int) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reviewsForPodcast(podcastID), nil
}

func (r *MemoryRepository) reviewsForPodcast(podcastID int) []*models.Review {
	results := []*models.Review{}
	for _, review := range r.reviews {
		if review.PodcastID == podcastID {
			results = append(results, review)
		}
	}
	return results
}

func (r *MemoryRepository) GetUserReviews(ctx context.Context, username string) ([]*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	username = strings.ToLower(username)
	results := []*models.Review{}
	for _, review := range r.reviews {
		if review.User != nil && review.User.Username == username {
			results = append(results, review)
		}
	}
	return results, nil
}

func (r *MemoryRepository) GetAverageRating(ctx context.Context, podcastID int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return formatAverageRating(r.reviewsForPodcast(podcastID)), nil
}

func (r *MemoryRepository) SetRecentlyAddedEpisode(episodeID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recentEpisode = episodeID
}

func (r *MemoryRepository) RecentlyAddedEpisode() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentEpisode
}

func (r *MemoryRepository) SetRecentlyAddedPodcast(podcastID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recentPodcast = podcastID
}

func (r *MemoryRepository) RecentlyAddedPodcast() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentPodcast
}
