package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"eventconnect/models"
)

// Relevance weights for the text stage. A query hit in the title is worth
// more than one buried in the description.
const (
	TitleWeight       = 10
	CategoryWeight    = 5
	TagWeight         = 3
	DescriptionWeight = 2
	LocationWeight    = 1

	minQueryLen    = 2
	maxSuggestions = 5
)

// Category labels offered as query suggestions.
var categoryLabels = []string{
	"Música", "Deportes", "Tecnología", "Gastronomía", "Arte", "Networking", "Aire Libre",
}

// Fallback suggestions when the query is empty or too short.
var trendingSearches = []string{
	"conciertos madrid", "eventos gratis", "festivales de verano", "networking tech", "arte urbano",
}

// Run filters and orders events against the given filters. Every stage is
// skipped when its filter field is absent; an empty filter set returns all
// events in input order.
func Run(events []models.Event, filters models.SearchFilters) models.SearchResult {
	type scoredEvent struct {
		event     models.Event
		relevance int
	}

	matched := make([]scoredEvent, 0, len(events))
	for _, ev := range events {
		relevance := 0
		if filters.Query != "" {
			relevance = relevanceScore(ev, filters.Query)
			if relevance == 0 {
				continue
			}
		}
		if !passesFacets(ev, filters) {
			continue
		}
		matched = append(matched, scoredEvent{event: ev, relevance: relevance})
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = models.SortByRelevance
	}
	ascending := sortAscending(sortBy, filters.SortOrder)

	compare := func(a, b scoredEvent) int {
		var ka, kb float64
		switch sortBy {
		case models.SortByDate:
			return strings.Compare(a.event.Date, b.event.Date)
		case models.SortByDistance:
			ka, _ = parseDistance(a.event.Distance)
			kb, _ = parseDistance(b.event.Distance)
		case models.SortByPopularity:
			ka, kb = float64(a.event.Attendees), float64(b.event.Attendees)
		case models.SortByPrice:
			ka, kb = a.event.Price, b.event.Price
		default:
			ka, kb = float64(a.relevance), float64(b.relevance)
		}
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		c := compare(matched[i], matched[j])
		if ascending {
			return c < 0
		}
		return c > 0
	})

	items := make([]models.Event, len(matched))
	for i, m := range matched {
		items[i] = m.event
	}

	return models.SearchResult{
		Items:       items,
		Total:       len(items),
		Page:        1,
		Limit:       len(items),
		HasMore:     false,
		Filters:     filters,
		Suggestions: suggestions(filters.Query, items),
	}
}

// relevanceScore sums weighted field matches; zero means no field matched.
func relevanceScore(ev models.Event, query string) int {
	q := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(ev.Title), q) {
		score += TitleWeight
	}
	if strings.Contains(strings.ToLower(ev.Category), q) {
		score += CategoryWeight
	}
	for _, tag := range ev.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += TagWeight
			break
		}
	}
	if strings.Contains(strings.ToLower(ev.Description), q) {
		score += DescriptionWeight
	}
	loc := strings.ToLower(ev.Location.Name + " " + ev.Location.City)
	if strings.Contains(loc, q) {
		score += LocationWeight
	}
	return score
}

// passesFacets applies the category, distance, date, price and tag stages.
func passesFacets(ev models.Event, filters models.SearchFilters) bool {
	if filters.Category != "" && !strings.EqualFold(ev.Category, filters.Category) {
		return false
	}

	if filters.Location != nil && filters.Location.Radius > 0 {
		if dist, ok := parseDistance(ev.Distance); ok && dist > filters.Location.Radius {
			return false
		}
	}

	if filters.DateRange != nil {
		start, ok := ev.StartTime()
		if !ok {
			return false
		}
		if lo, ok := parseWhen(filters.DateRange.Start); ok && start.Before(lo) {
			return false
		}
		if hi, ok := parseWhen(filters.DateRange.End); ok {
			// A bare end date covers through the end of that day.
			if len(filters.DateRange.End) == len("2006-01-02") {
				hi = hi.Add(24*time.Hour - time.Nanosecond)
			}
			if start.After(hi) {
				return false
			}
		}
	}

	if filters.Price != nil {
		price := ev.Price
		if price < filters.Price.Min || (filters.Price.Max > 0 && price > filters.Price.Max) {
			return false
		}
	}

	if len(filters.Tags) > 0 && !hasAnyTag(ev.Tags, filters.Tags) {
		return false
	}
	return true
}

func hasAnyTag(eventTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range eventTags {
			if strings.EqualFold(t, w) {
				return true
			}
		}
	}
	return false
}

// parseDistance extracts the leading number from a display string such as
// "2.3 km". Events without a distance report ok=false and pass radius checks.
func parseDistance(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	var d float64
	if _, err := fmt.Sscanf(s, "%f", &d); err != nil {
		return 0, false
	}
	return d, true
}

// sortAscending resolves the comparator direction: relevance and popularity
// default to descending, everything else ascending.
func sortAscending(sortBy, sortOrder string) bool {
	switch sortOrder {
	case "asc":
		return true
	case "desc":
		return false
	}
	switch sortBy {
	case models.SortByRelevance, models.SortByPopularity:
		return false
	default:
		return true
	}
}

// parseWhen accepts either a full RFC 3339 timestamp or a bare date.
func parseWhen(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// suggestions offers follow-up queries: the fixed trending list for short
// queries, otherwise matching category labels plus categories present in the
// result set.
func suggestions(query string, results []models.Event) []string {
	if len(strings.TrimSpace(query)) < minQueryLen {
		return trendingSearches
	}

	q := strings.ToLower(query)
	seen := make(map[string]bool)
	var out []string

	add := func(s string) {
		key := strings.ToLower(s)
		if s != "" && !seen[key] && len(out) < maxSuggestions {
			seen[key] = true
			out = append(out, s)
		}
	}

	for _, label := range categoryLabels {
		if strings.Contains(strings.ToLower(label), q) {
			add(label)
		}
	}
	for _, ev := range results {
		add(ev.Category)
	}
	if out == nil {
		out = []string{}
	}
	return out
}
