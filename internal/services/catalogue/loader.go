package catalogue

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/castlog/catalogue-api/internal/models"
	"github.com/castlog/catalogue-api/internal/services/ingest"
)

// Field defaults applied when a source column is missing or blank. A single
// malformed row never aborts the load.
const (
	defaultPodcastTitle = "Untitled"
	defaultLanguage     = "Unspecified"
	defaultAuthorName   = "Unknown"
	defaultEpisodeField = "Unknown"
)

// graph is the fully-wired domain object set produced by one ingestion run.
// Author and category ids are sequential in first-sighting order, so they
// are stable over the source file's row order but not over reorderings.
type graph struct {
	authors    []*models.Author
	categories []*models.Category
	podcasts   []*models.Podcast
	episodes   []*models.Episode

	authorsByName    map[string]*models.Author   // exact trimmed name
	categoriesByName map[string]*models.Category // trimmed + lowercased name
}

func buildGraph(reader ingest.CatalogueReader) (*graph, error) {
	podcastRows, err := reader.Podcasts()
	if err != nil {
		return nil, fmt.Errorf("loading podcast rows: %w", err)
	}
	episodeRows, err := reader.Episodes()
	if err != nil {
		return nil, fmt.Errorf("loading episode rows: %w", err)
	}

	g := &graph{
		authorsByName:    make(map[string]*models.Author),
		categoriesByName: make(map[string]*models.Category),
	}

	for _, row := range podcastRows {
		g.loadCategories(row)
	}
	for _, row := range podcastRows {
		g.loadAuthor(row)
	}
	for _, row := range podcastRows {
		if podcast, err := g.buildPodcast(row); err == nil {
			g.podcasts = append(g.podcasts, podcast)
		}
	}
	for _, row := range episodeRows {
		g.episodes = append(g.episodes, g.buildEpisode(row))
	}
	for _, episode := range g.episodes {
		if episode.Podcast != nil {
			episode.Podcast.AddEpisode(episode)
		}
	}
	return g, nil
}

// loadCategories registers each pipe-delimited category name on the row,
// normalized by trim + lowercase, under a sequential id.
func (g *graph) loadCategories(row ingest.Row) {
	for _, name := range strings.Split(row.Get("categories", ""), "|") {
		g.category(name)
	}
}

func (g *graph) category(name string) *models.Category {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil
	}
	if existing, ok := g.categoriesByName[normalized]; ok {
		return existing
	}
	category, err := models.NewCategory(len(g.categoriesByName)+1, capitalize(normalized))
	if err != nil {
		return nil
	}
	g.categoriesByName[normalized] = category
	g.categories = append(g.categories, category)
	return category
}

func (g *graph) loadAuthor(row ingest.Row) {
	g.author(row.Get("author", ""))
}

func (g *graph) author(name string) *models.Author {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultAuthorName
	}
	if existing, ok := g.authorsByName[name]; ok {
		return existing
	}
	author, err := models.NewAuthor(len(g.authorsByName)+1, name)
	if err != nil {
		return nil
	}
	g.authorsByName[name] = author
	g.authors = append(g.authors, author)
	return author
}

func (g *graph) buildPodcast(row ingest.Row) (*models.Podcast, error) {
	author := g.author(row.Get("author", ""))
	podcast, err := models.NewPodcast(
		row.GetInt("id", 0),
		author,
		row.Get("title", defaultPodcastTitle),
		row.Get("image", ""),
		row.Get("description", ""),
		row.Get("language", defaultLanguage),
		row.Get("website", ""),
		row.GetInt("itunes_id", 0),
	)
	if err != nil {
		return nil, err
	}
	author.AddPodcast(podcast)
	for _, name := range strings.Split(row.Get("categories", ""), "|") {
		if category := g.category(name); category != nil {
			podcast.AddCategory(category)
		}
	}
	return podcast, nil
}

// buildEpisode resolves the owning podcast by numeric id. The source data
// names the audio column "audio"; "audio_link" is accepted as a fallback
// for feeds exported with the older header.
func (g *graph) buildEpisode(row ingest.Row) *models.Episode {
	audioLink := row.Get("audio", row.Get("audio_link", defaultEpisodeField))
	return models.NewEpisode(
		row.GetInt("id", 0),
		g.podcastByID(row.GetInt("podcast_id", 0)),
		row.Get("title", defaultEpisodeField),
		row.GetInt("audio_length", 0),
		row.Get("pub_date", defaultEpisodeField),
		row.Get("description", defaultEpisodeField),
		audioLink,
	)
}

func (g *graph) podcastByID(id int) *models.Podcast {
	for _, podcast := range g.podcasts {
		if podcast.ID == id {
			return podcast
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// sortedByTitle returns a copy ordered ascending by title, case-sensitive.
// Both backends sort in the access layer rather than the storage layer.
func sortedByTitle(podcasts []*models.Podcast) []*models.Podcast {
	out := make([]*models.Podcast, len(podcasts))
	copy(out, podcasts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// rankSearchResults unifies the three match channels: title matches first,
// then author-name matches not already included, then category matches not
// already included. De-duplication is stable, by podcast id.
func rankSearchResults(podcasts []*models.Podcast, query string) []*models.Podcast {
	query = strings.ToLower(query)
	seen := make(map[int]bool)
	var results []*models.Podcast

	add := func(p *models.Podcast) {
		if !seen[p.ID] {
			seen[p.ID] = true
			results = append(results, p)
		}
	}

	for _, p := range podcasts {
		if strings.Contains(strings.ToLower(p.Title), query) {
			add(p)
		}
	}
	for _, p := range podcasts {
		if p.Author != nil && strings.Contains(strings.ToLower(p.Author.Name), query) {
			add(p)
		}
	}
	for _, p := range podcasts {
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c.Name), query) {
				add(p)
				break
			}
		}
	}
	return results
}

// formatAverageRating renders the arithmetic mean to one decimal place, or
// the sentinel when no reviews exist.
func formatAverageRating(reviews []*models.Review) string {
	if len(reviews) == 0 {
		return NoRatingsSentinel
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(len(reviews)))
}
