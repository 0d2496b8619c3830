package catalogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/ingest"
)

// GormRepository persists the catalogue through a relational database. The
// recently-added markers are deliberately process state, not rows: they
// track what the running instance did, matching the in-memory backend.
type GormRepository struct {
	db *gorm.DB

	mu            sync.RWMutex
	recentEpisode int
	recentPodcast int
}

// NewGormRepository wraps an initialized database handle.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{
		db:            db,
		recentEpisode: NoMarker,
		recentPodcast: NoMarker,
	}
}

// LoadData seeds the database from the reader. A database that already
// holds podcasts is left untouched, so restarts do not duplicate the
// catalogue.
func (r *GormRepository) LoadData(ctx context.Context, reader ingest.CatalogueReader) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Count(&count).Error; err != nil {
		return fmt.Errorf("checking for existing catalogue: %w", err)
	}
	if count > 0 {
		return nil
	}

	g, err := buildGraph(reader)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(g.authors) > 0 {
			if err := tx.Omit("Podcasts").CreateInBatches(g.authors, 200).Error; err != nil {
				return fmt.Errorf("seeding authors: %w", err)
			}
		}
		if len(g.categories) > 0 {
			if err := tx.CreateInBatches(g.categories, 200).Error; err != nil {
				return fmt.Errorf("seeding categories: %w", err)
			}
		}
		// Category associations ride along to populate the join table;
		// the category rows themselves already exist and are skipped.
		if len(g.podcasts) > 0 {
			if err := tx.Omit("Author", "Episodes", "Reviews").CreateInBatches(g.podcasts, 100).Error; err != nil {
				return fmt.Errorf("seeding podcasts: %w", err)
			}
		}
		if len(g.episodes) > 0 {
			if err := tx.Omit("Podcast").CreateInBatches(g.episodes, 200).Error; err != nil {
				return fmt.Errorf("seeding episodes: %w", err)
			}
		}
		return nil
	})
}

func (r *GormRepository) GetPodcast(ctx context.Context, id int) (*models.Podcast, error) {
	var podcast models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Preload("Episodes").
		First(&podcast, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching podcast %d: %w", id, err)
	}
	return &podcast, nil
}

func (r *GormRepository) GetPodcasts(ctx context.Context) ([]*models.Podcast, error) {
	var podcasts []*models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Find(&podcasts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching podcasts: %w", err)
	}
	// Ordered in the access layer so both backends share one collation.
	return sortedByTitle(podcasts), nil
}

func (r *GormRepository) GetEpisode(ctx context.Context, id int) (*models.Episode, error) {
	var episode models.Episode
	err := r.db.WithContext(ctx).First(&episode, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching episode %d: %w", id, err)
	}
	return &episode, nil
}

func (r *GormRepository) GetEpisodesByPodcastID(ctx context.Context, podcastID int) ([]*models.Episode, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("id = ?", podcastID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking podcast %d: %w", podcastID, err)
	}
	if count == 0 {
		return nil, nil
	}
	var episodes []*models.Episode
	err := r.db.WithContext(ctx).
		Where("podcast_id = ?", podcastID).
		Order("id").
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("fetching episodes of podcast %d: %w", podcastID, err)
	}
	return episodes, nil
}

func (r *GormRepository) GetAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author
	if err := r.db.WithContext(ctx).Order("id").Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("fetching authors: %w", err)
	}
	return authors, nil
}

func (r *GormRepository) GetCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

func (r *GormRepository) SearchPodcastsByQuery(ctx context.Context, query string) ([]*models.Podcast, error) {
	// Ranking is shared with the in-memory backend, so the candidate set is
	// the whole catalogue rather than a pushed-down LIKE per channel.
	var podcasts []*models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Find(&podcasts).Error
	if err != nil {
		return nil, fmt.Errorf("searching podcasts: %w", err)
	}
	return rankSearchResults(podcasts, query), nil
}

func (r *GormRepository) SearchPodcastByCategoryID(ctx context.Context, categoryID int) ([]*models.Podcast, error) {
	var podcasts []*models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		Joins("JOIN podcast_categories pc ON pc.podcast_id = podcasts.id").
		Where("pc.category_id = ?", categoryID).
		Order("podcasts.id").
		Find(&podcasts).Error
	if err != nil {
		return nil, fmt.Errorf("searching podcasts by category %d: %w", categoryID, err)
	}
	return podcasts, nil
}

func (r *GormRepository) SearchPodcastByAuthorID(ctx context.Context, authorID int) ([]*models.Podcast, error) {
	var podcasts []*models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("id").
		Find(&podcasts).Error
	if err != nil {
		return nil, fmt.Errorf("searching podcasts by author %d: %w", authorID, err)
	}
	return podcasts, nil
}

func (r *GormRepository) AddUser(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return fmt.Errorf("storing user %q: %w", user.Username, err)
	}
	return nil
}

func (r *GormRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Playlists").
		First(&user, "username = ?", strings.ToLower(username)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %q: %w", username, err)
	}
	return &user, nil
}

func (r *GormRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

func (r *GormRepository) CreatePlaylist(ctx context.Context, user *models.User) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Playlist{}).Where("user_id = ?", user.ID).Count(&count).Error
	if err != nil {
		return fmt.Errorf("checking playlist of user %q: %w", user.Username, err)
	}
	if count > 0 {
		return nil
	}
	playlist, err := models.NewPlaylist(0, user,
		user.Username+"'s Playlist",
		"Save episodes and whole playlists to watch later!")
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(playlist).Error; err != nil {
		return fmt.Errorf("storing playlist of user %q: %w", user.Username, err)
	}
	user.AddPlaylist(playlist)
	return nil
}

func (r *GormRepository) GetPlaylist(ctx context.Context, user *models.User) (*models.Playlist, error) {
	playlist, err := r.playlistRow(ctx, user)
	if err != nil {
		return nil, err
	}

	var episodeRows []*models.PlaylistEpisode
	err = r.db.WithContext(ctx).
		Preload("Episode").
		Where("playlist_id = ?", playlist.ID).
		Order("id").
		Find(&episodeRows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching playlist episodes: %w", err)
	}
	for _, row := range episodeRows {
		playlist.AddEpisode(row.Episode)
	}

	var podcastRows []*models.PlaylistPodcast
	err = r.db.WithContext(ctx).
		Preload("Podcast").
		Preload("Podcast.Author").
		Where("playlist_id = ?", playlist.ID).
		Order("id").
		Find(&podcastRows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching playlist podcasts: %w", err)
	}
	for _, row := range podcastRows {
		playlist.AddPodcast(row.Podcast)
	}
	return playlist, nil
}

// playlistRow fetches the bare playlist record without its entries.
func (r *GormRepository) playlistRow(ctx context.Context, user *models.User) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.WithContext(ctx).First(&playlist, "user_id = ?", user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoPlaylist
	}
	if err != nil {
		return nil, fmt.Errorf("fetching playlist of user %q: %w", user.Username, err)
	}
	return &playlist, nil
}

func (r *GormRepository) AddEpisodeToPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error {
	playlist, err := r.playlistRow(ctx, user)
	if err != nil {
		return err
	}
	row := &models.PlaylistEpisode{PlaylistID: playlist.ID, EpisodeID: episode.ID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("adding episode %d to playlist: %w", episode.ID, err)
	}
	return nil
}

func (r *GormRepository) AddPodcastToPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error {
	playlist, err := r.playlistRow(ctx, user)
	if err != nil {
		return err
	}
	row := &models.PlaylistPodcast{PlaylistID: playlist.ID, PodcastID: podcast.ID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("adding podcast %d to playlist: %w", podcast.ID, err)
	}
	return nil
}

func (r *GormRepository) DeleteEpisodeFromPlaylist(ctx context.Context, episode *models.Episode, user *models.User) error {
	playlist, err := r.playlistRow(ctx, user)
	if err != nil {
		return err
	}
	var row models.PlaylistEpisode
	err = r.db.WithContext(ctx).
		Where("playlist_id = ? AND episode_id = ?", playlist.ID, episode.ID).
		Order("id").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrEpisodeNotInPlaylist
	}
	if err != nil {
		return fmt.Errorf("locating episode %d in playlist: %w", episode.ID, err)
	}
	if err := r.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return fmt.Errorf("removing episode %d from playlist: %w", episode.ID, err)
	}
	return nil
}

func (r *GormRepository) DeletePodcastFromPlaylist(ctx context.Context, podcast *models.Podcast, user *models.User) error {
	playlist, err := r.playlistRow(ctx, user)
	if err != nil {
		return err
	}
	var row models.PlaylistPodcast
	err = r.db.WithContext(ctx).
		Where("playlist_id = ? AND podcast_id = ?", playlist.ID, podcast.ID).
		Order("id").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrPodcastNotInPlaylist
	}
	if err != nil {
		return fmt.Errorf("locating podcast %d in playlist: %w", podcast.ID, err)
	}
	if err := r.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return fmt.Errorf("removing podcast %d from playlist: %w", podcast.ID, err)
	}
	return nil
}

// AddReview upserts by id. Ids are count-derived, so a collision overwrites
// the earlier row rather than erroring, mirroring a merge-style session.
func (r *GormRepository) AddReview(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error; err != nil {
		return fmt.Errorf("storing review %d: %w", review.ID, err)
	}
	return nil
}

func (r *GormRepository) GetReview(ctx context.Context, id int) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Preload("User").First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching review %d: %w", id, err)
	}
	return &review, nil
}

func (r *GormRepository) GetAllReviews(ctx context.Context) ([]*models.Review, error) {
	var reviews []*models.Review
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("fetching reviews: %w", err)
	}
	return reviews, nil
}

func (r *GormRepository) GetReviewsByPodcast(ctx context.Context, podcastID int) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("podcast_id = ?", podcastID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("fetching reviews of podcast %d: %w", podcastID, err)
	}
	return reviews, nil
}

func (r *GormRepository) GetUserReviews(ctx context.Context, username string) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("users.username = ?", strings.ToLower(username)).
		Order("reviews.id").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("fetching reviews of user %q: %w", username, err)
	}
	return reviews, nil
}

func (r *GormRepository) GetAverageRating(ctx context.Context, podcastID int) (string, error) {
	reviews, err := r.GetReviewsByPodcast(ctx, podcastID)
	if err != nil {
		return "", err
	}
	return formatAverageRating(reviews), nil
}

func (r *GormRepository) SetRecentlyAddedEpisode(episodeID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recentEpisode = episodeID
}

func (r *GormRepository) RecentlyAddedEpisode() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentEpisode
}

func (r *GormRepository) SetRecentlyAddedPodcast(podcastID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recentPodcast = podcastID
}

func (r *GormRepository) RecentlyAddedPodcast() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.recentPodcast
}
