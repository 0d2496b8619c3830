package models

// Playlist is a user-owned ordered collection of episodes and podcasts.
// Exactly one exists per user; that invariant is enforced by the repository,
// not by this type. Unlike Podcast.Categories, both lists permit duplicates.
//
// The element slices are kept out of the relational mapping; the database
// backend persists membership through PlaylistEpisode and PlaylistPodcast
// join rows so duplicate entries survive storage.
type Playlist struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	UserID      int        `json:"-" gorm:"index"`
	User        *User      `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Episodes    []*Episode `json:"episodes" gorm:"-"`
	Podcasts    []*Podcast `json:"podcasts" gorm:"-"`
}

// NewPlaylist constructs a Playlist for the given user.
func NewPlaylist(id int, user *User, title, description string) (*Playlist, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNilUser
	}
	return &Playlist{
		ID:          id,
		UserID:      user.ID,
		User:        user,
		Title:       title,
		Description: description,
	}, nil
}

// AddEpisode appends an episode. Duplicates are allowed.
func (p *Playlist) AddEpisode(e *Episode) {
	p.Episodes = append(p.Episodes, e)
}

// AddPodcast appends a podcast. Duplicates are allowed.
func (p *Playlist) AddPodcast(pc *Podcast) {
	p.Podcasts = append(p.Podcasts, pc)
}

// DeleteEpisode removes the first entry matching the episode's id.
func (p *Playlist) DeleteEpisode(e *Episode) error {
	for i, existing := range p.Episodes {
		if existing.ID == e.ID {
			p.Episodes = append(p.Episodes[:i], p.Episodes[i+1:]...)
			return nil
		}
	}
	return ErrEpisodeNotInPlaylist
}

// DeletePodcast removes the first entry matching the podcast's id.
func (p *Playlist) DeletePodcast(pc *Podcast) error {
	for i, existing := range p.Podcasts {
		if existing.ID == pc.ID {
			p.Podcasts = append(p.Podcasts[:i], p.Podcasts[i+1:]...)
			return nil
		}
	}
	return ErrPodcastNotInPlaylist
}

// Merge appends every entry of the other playlist onto this one.
func (p *Playlist) Merge(other *Playlist) {
	p.Episodes = append(p.Episodes, other.Episodes...)
	p.Podcasts = append(p.Podcasts, other.Podcasts...)
}

// PlaylistEpisode is a join row recording one playlist episode entry. Rows
// carry their own id so the same episode may appear more than once.
type PlaylistEpisode struct {
	ID         int      `gorm:"primaryKey"`
	PlaylistID int      `gorm:"index"`
	EpisodeID  int      `gorm:"index"`
	Episode    *Episode `gorm:"foreignKey:EpisodeID;references:ID"`
}

// PlaylistPodcast is a join row recording one playlist podcast entry.
type PlaylistPodcast struct {
	ID         int      `gorm:"primaryKey"`
	PlaylistID int      `gorm:"index"`
	PodcastID  int      `gorm:"index"`
	Podcast    *Podcast `gorm:"foreignKey:PodcastID;references:ID"`
}

// Chart is an ephemeral ranking built at render time from a slice of the
// catalogue. It is never persisted.
type Chart struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Podcasts []*Podcast `json:"podcasts"`
}

// NewChart constructs a Chart over the given podcasts.
func NewChart(id int, title string, podcasts []*Podcast) *Chart {
	return &Chart{ID: id, Title: title, Podcasts: podcasts}
}
