package models

import "strings"

// Author represents the creator of one or more podcasts. The Podcasts slice
// is a back-reference maintained during ingestion, not ownership.
type Author struct {
	ID       int        `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"not null;uniqueIndex"`
	Podcasts []*Podcast `json:"-" gorm:"foreignKey:AuthorID"`
}

// NewAuthor validates and constructs an Author.
func NewAuthor(id int, name string) (*Author, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(name, "author name"); err != nil {
		return nil, err
	}
	return &Author{ID: id, Name: strings.TrimSpace(name)}, nil
}

// AddPodcast appends a podcast back-reference, skipping podcasts already
// present (membership by id).
func (a *Author) AddPodcast(p *Podcast) {
	for _, existing := range a.Podcasts {
		if existing.ID == p.ID {
			return
		}
	}
	a.Podcasts = append(a.Podcasts, p)
}

// RemovePodcast drops a podcast back-reference if present.
func (a *Author) RemovePodcast(p *Podcast) {
	for i, existing := range a.Podcasts {
		if existing.ID == p.ID {
			a.Podcasts = append(a.Podcasts[:i], a.Podcasts[i+1:]...)
			return
		}
	}
}

// Category is a normalized genre label shared across podcasts.
type Category struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// NewCategory validates and constructs a Category.
func NewCategory(id int, name string) (*Category, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateNonEmpty(name, "category name"); err != nil {
		return nil, err
	}
	return &Category{ID: id, Name: strings.TrimSpace(name)}, nil
}

// Podcast is the central catalogue entity. Categories and Episodes are
// populated once during ingestion and never shrink afterwards; Reviews is
// append-only and grows during normal request handling.
type Podcast struct {
	ID          int         `json:"id" gorm:"primaryKey"`
	AuthorID    int         `json:"-" gorm:"index"`
	Author      *Author     `json:"author"`
	Title       string      `json:"title" gorm:"not null"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
	Language    string      `json:"language"`
	Website     string      `json:"website"`
	ITunesID    int         `json:"itunes_id" gorm:"column:itunes_id"`
	Categories  []*Category `json:"categories" gorm:"many2many:podcast_categories"`
	Episodes    []*Episode  `json:"-" gorm:"foreignKey:PodcastID"`
	Reviews     []*Review   `json:"-" gorm:"foreignKey:PodcastID"`
}

// NewPodcast validates and constructs a Podcast. The author is required;
// field defaults for blank ingestion values are applied by the caller.
func NewPodcast(id int, author *Author, title, image, description, language, website string, itunesID int) (*Podcast, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errNilAuthor
	}
	if err := validateNonEmpty(title, "podcast title"); err != nil {
		return nil, err
	}
	p := &Podcast{
		ID:          id,
		AuthorID:    author.ID,
		Author:      author,
		Title:       strings.TrimSpace(title),
		Image:       image,
		Description: description,
		Language:    language,
		Website:     website,
		ITunesID:    itunesID,
	}
	return p, nil
}

// AddCategory appends a category, skipping duplicates (membership by id).
func (p *Podcast) AddCategory(c *Category) {
	for _, existing := range p.Categories {
		if existing.ID == c.ID {
			return
		}
	}
	p.Categories = append(p.Categories, c)
}

// HasCategory reports whether the podcast carries the given category.
func (p *Podcast) HasCategory(categoryID int) bool {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// AddEpisode appends an episode, skipping duplicates (membership by id).
func (p *Podcast) AddEpisode(e *Episode) {
	for _, existing := range p.Episodes {
		if existing.ID == e.ID {
			return
		}
	}
	p.Episodes = append(p.Episodes, e)
}

// AddReview appends a review. Reviews are append-only and may repeat.
func (p *Podcast) AddReview(r *Review) {
	p.Reviews = append(p.Reviews, r)
}

// Episode belongs to exactly one podcast. Construction mirrors the loose
// ingestion contract: fields are taken as-is, the publication date is
// truncated to its date prefix.
type Episode struct {
	ID          int      `json:"id" gorm:"primaryKey"`
	PodcastID   int      `json:"podcast_id" gorm:"index"`
	Podcast     *Podcast `json:"-"`
	Title       string   `json:"title"`
	AudioLength int      `json:"audio_length"`
	PubDate     string   `json:"pub_date"`
	Description string   `json:"description"`
	AudioLink   string   `json:"audio_link"`
}

// NewEpisode constructs an Episode. The publication date keeps only its
// first 10 characters (YYYY-MM-DD prefix of the source timestamps).
func NewEpisode(id int, podcast *Podcast, title string, audioLength int, pubDate, description, audioLink string) *Episode {
	if len(pubDate) > 10 {
		pubDate = pubDate[:10]
	}
	e := &Episode{
		ID:          id,
		Podcast:     podcast,
		Title:       title,
		AudioLength: audioLength,
		PubDate:     pubDate,
		Description: description,
		AudioLink:   audioLink,
	}
	if podcast != nil {
		e.PodcastID = podcast.ID
	}
	return e
}
