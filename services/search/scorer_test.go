package search

import (
	"testing"

	"eventconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEvents() []models.Event {
	return []models.Event{
		{
			ID:        "rock",
			Title:     "Concierto de Rock en Madrid",
			Category:  "Música",
			Tags:      []string{"rock", "directo"},
			Date:      "2025-07-10T21:00:00Z",
			Location:  models.Location{Name: "WiZink Center", City: "Madrid"},
			Distance:  "2.3 km",
			Price:     35,
			Attendees: 500,
		},
		{
			ID:        "food",
			Title:     "Festival Gastronómico de Madrid",
			Category:  "Gastronomía",
			Tags:      []string{"comida", "street food"},
			Date:      "2025-07-20T12:00:00Z",
			Location:  models.Location{Name: "Matadero", City: "Madrid"},
			Distance:  "5.1 km",
			Price:     0,
			Attendees: 1200,
		},
		{
			ID:        "tech",
			Title:     "Meetup de Desarrolladores",
			Category:  "Tecnología",
			Tags:      []string{"networking", "software"},
			Date:      "2025-08-02T18:30:00Z",
			Location:  models.Location{Name: "Campus Norte", City: "Barcelona"},
			Price:     10,
			Attendees: 80,
		},
	}
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestRunNoFiltersReturnsEverything(t *testing.T) {
	events := fixtureEvents()
	result := Run(events, models.SearchFilters{})

	assert.Equal(t, len(events), result.Total)
	assert.Equal(t, []string{"rock", "food", "tech"}, ids(result.Items))
	assert.Equal(t, 1, result.Page)
	assert.False(t, result.HasMore)
}

func TestRunTextQuery(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Query: "madrid"})

	assert.Equal(t, 2, result.Total)
	assert.ElementsMatch(t, []string{"rock", "food"}, ids(result.Items))
}

func TestRunRelevanceOrdersTitleHitsFirst(t *testing.T) {
	events := []models.Event{
		{ID: "desc-hit", Title: "Cata de vinos", Description: "jazz en vivo"},
		{ID: "title-hit", Title: "Festival de Jazz", Description: "tres escenarios"},
	}
	result := Run(events, models.SearchFilters{Query: "jazz"})

	require.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"title-hit", "desc-hit"}, ids(result.Items))
}

func TestRunCategoryFilter(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Category: "música"})

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "rock", result.Items[0].ID)
}

func TestRunFilterConjunction(t *testing.T) {
	events := fixtureEvents()

	byCategory := Run(events, models.SearchFilters{Category: "Gastronomía"})
	byPrice := Run(events, models.SearchFilters{Price: &models.PriceRange{Min: 0, Max: 20}})
	both := Run(events, models.SearchFilters{
		Category: "Gastronomía",
		Price:    &models.PriceRange{Min: 0, Max: 20},
	})

	// The combined result is the intersection of the individual filters.
	assert.ElementsMatch(t, []string{"food"}, ids(byCategory.Items))
	assert.ElementsMatch(t, []string{"food", "tech"}, ids(byPrice.Items))
	assert.ElementsMatch(t, []string{"food"}, ids(both.Items))
}

func TestRunDistanceFilter(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Location: &models.RadiusFilter{Radius: 3}})

	// "tech" has no distance string and passes unconditionally.
	assert.ElementsMatch(t, []string{"rock", "tech"}, ids(result.Items))
}

func TestRunDateRangeFilter(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{
		DateRange: &models.DateRange{Start: "2025-07-15", End: "2025-08-02"},
	})

	assert.ElementsMatch(t, []string{"food", "tech"}, ids(result.Items))
}

func TestRunTagFilter(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Tags: []string{"networking", "salsa"}})

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "tech", result.Items[0].ID)
}

func TestRunSortByPriceAscending(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{SortBy: models.SortByPrice})

	assert.Equal(t, []string{"food", "tech", "rock"}, ids(result.Items))
}

func TestRunSortByPopularityDefaultsDescending(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{SortBy: models.SortByPopularity})

	assert.Equal(t, []string{"food", "rock", "tech"}, ids(result.Items))
}

func TestRunSortOrderOverride(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{SortBy: models.SortByPopularity, SortOrder: "asc"})

	assert.Equal(t, []string{"tech", "rock", "food"}, ids(result.Items))
}

func TestSuggestionsShortQueryReturnsTrendingSearches(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Query: ""})
	assert.Equal(t, trendingSearches, result.Suggestions)

	// With a query present but matching nothing the fixed list is not used.
	empty := Run(fixtureEvents(), models.SearchFilters{Query: "zzzz"})
	assert.Empty(t, empty.Suggestions)
}

func TestSuggestionsMatchCategoriesAndResults(t *testing.T) {
	result := Run(fixtureEvents(), models.SearchFilters{Query: "madrid"})

	assert.LessOrEqual(t, len(result.Suggestions), maxSuggestions)
	assert.Contains(t, result.Suggestions, "Música")
	assert.Contains(t, result.Suggestions, "Gastronomía")
}
