// Package feed derives the display list for the journey feed from the
// full in-memory collection of posts. The pipeline is pure: it never
// mutates the base collection and re-running it with unchanged inputs
// yields identical output.
package feed

import (
	"sort"
	"strings"

	"github.com/Meyyun/HobbyHub/internal/models"
)

// Sort keys accepted by Apply. Any other value leaves the incoming
// order untouched.
const (
	SortByCreated = "created_at"
	SortByLikes   = "like"
)

// Params are the three independent view parameters of the feed.
type Params struct {
	Search     string // free-text search over title and location
	TravelType string // exact-match journey type facet
	SortBy     string // SortByCreated or SortByLikes
}

// Apply filters and sorts the base collection. Search is a
// case-insensitive substring match on title or location; the travel
// type facet is an exact match. Sorting is stable so ties keep their
// incoming (created_at descending) order.
func Apply(posts []models.Travel, p Params) []models.Travel {
	out := make([]models.Travel, 0, len(posts))
	term := strings.ToLower(p.Search)
	for _, post := range posts {
		if term != "" &&
			!strings.Contains(strings.ToLower(post.Title), term) &&
			!strings.Contains(strings.ToLower(post.Location), term) {
			continue
		}
		if p.TravelType != "" && post.TravelType != p.TravelType {
			continue
		}
		out = append(out, post)
	}

	switch p.SortBy {
	case SortByCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortByLikes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Like > out[j].Like
		})
	}
	return out
}

// Facets collects the distinct non-empty travel types of the base
// collection in first-seen order. The facet list always comes from the
// unfiltered collection, never narrowed by the current filter.
func Facets(posts []models.Travel) []string {
	seen := make(map[string]bool)
	facets := []string{}
	for _, post := range posts {
		if post.TravelType == "" || seen[post.TravelType] {
			continue
		}
		seen[post.TravelType] = true
		facets = append(facets, post.TravelType)
	}
	return facets
}

// Stats summarizes the unfiltered collection for the feed footer.
type Stats struct {
	TotalJourneys int `json:"total_journeys"`
	Countries     int `json:"countries"`
}

// Summarize counts journeys and distinct countries. The country is the
// text after the last comma of the location.
func Summarize(posts []models.Travel) Stats {
	countries := make(map[string]bool)
	for _, post := range posts {
		if post.Location == "" {
			continue
		}
		parts := strings.Split(post.Location, ",")
		country := strings.TrimSpace(parts[len(parts)-1])
		if country != "" {
			countries[country] = true
		}
	}
	return Stats{TotalJourneys: len(posts), Countries: len(countries)}
}
