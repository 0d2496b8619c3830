package types

import (
	"github.com/castlog/catalogue-api/internal/models"
)

// FromPodcast transforms a domain podcast to its API shape
func FromPodcast(p *models.Podcast) *Podcast {
	if p == nil {
		return nil
	}

	categories := make([]string, 0, len(p.Categories))
	for _, category := range p.Categories {
		categories = append(categories, category.Name)
	}

	authorName := ""
	if p.Author != nil {
		authorName = p.Author.Name
	}

	return &Podcast{
		ID:          p.ID,
		Title:       p.Title,
		Author:      authorName,
		AuthorID:    p.AuthorID,
		Description: p.Description,
		Website:     p.Website,
		Image:       p.Image,
		ITunesID:    p.ITunesID,
		Language:    p.Language,
		Categories:  categories,
		Episodes:    len(p.Episodes),
	}
}

// FromPodcasts transforms a list of domain podcasts
func FromPodcasts(podcasts []*models.Podcast) []Podcast {
	out := make([]Podcast, 0, len(podcasts))
	for _, p := range podcasts {
		if dto := FromPodcast(p); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// FromEpisode transforms a domain episode to its API shape
func FromEpisode(e *models.Episode) *Episode {
	if e == nil {
		return nil
	}
	return &Episode{
		ID:          e.ID,
		PodcastID:   e.PodcastID,
		Title:       e.Title,
		Description: e.Description,
		AudioLink:   e.AudioLink,
		AudioLength: e.AudioLength,
		PubDate:     e.PubDate,
	}
}

// FromEpisodes transforms a list of domain episodes
func FromEpisodes(episodes []*models.Episode) []Episode {
	out := make([]Episode, 0, len(episodes))
	for _, e := range episodes {
		if dto := FromEpisode(e); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// FromCategories transforms a list of domain categories
func FromCategories(categories []*models.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category{ID: c.ID, Name: c.Name})
	}
	return out
}

// FromAuthors transforms a list of domain authors
func FromAuthors(authors []*models.Author) []Author {
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, Author{ID: a.ID, Name: a.Name})
	}
	return out
}

// FromReview transforms a domain review to its API shape
func FromReview(r *models.Review) *Review {
	if r == nil {
		return nil
	}
	username := ""
	if r.User != nil {
		username = r.User.Username
	}
	return &Review{
		ID:        r.ID,
		PodcastID: r.PodcastID,
		Username:  username,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

// FromReviews transforms a list of domain reviews
func FromReviews(reviews []*models.Review) []Review {
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if dto := FromReview(r); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// FromPlaylist transforms a domain playlist with its entries
func FromPlaylist(p *models.Playlist) *Playlist {
	if p == nil {
		return nil
	}
	return &Playlist{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Episodes:    FromEpisodes(p.Episodes),
		Podcasts:    FromPodcasts(p.Podcasts),
	}
}

// FromUser transforms a domain user to its public shape
func FromUser(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{ID: u.ID, Username: u.Username}
}

// FromChart transforms a domain chart
func FromChart(c *models.Chart) Chart {
	return Chart{
		ID:       c.ID,
		Title:    c.Title,
		Podcasts: FromPodcasts(c.Podcasts),
	}
}
