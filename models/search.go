package models

// RadiusFilter restricts results to events within Radius kilometres of the
// viewer. Events without a known distance always pass.
type RadiusFilter struct {
	Radius float64 `json:"radius"`
}

// DateRange is an inclusive [Start, End] window over event dates, RFC 3339.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PriceRange is an inclusive price window. Events without a price count as free.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchFilters narrows and orders a search. Every field is optional; a nil
// or zero field means "no constraint".
type SearchFilters struct {
	Query     string        `json:"query,omitempty"`
	Category  string        `json:"category,omitempty"`
	Location  *RadiusFilter `json:"location,omitempty"`
	DateRange *DateRange    `json:"dateRange,omitempty"`
	Price     *PriceRange   `json:"priceRange,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	SortBy    string        `json:"sortBy,omitempty"`
	SortOrder string        `json:"sortOrder,omitempty"`
}

// Sort keys accepted by SearchFilters.SortBy. Relevance is the default.
const (
	SortByRelevance  = "relevance"
	SortByDate       = "date"
	SortByDistance   = "distance"
	SortByPopularity = "popularity"
	SortByPrice      = "price"
)

// SearchResult is the envelope handed back to the UI. HasMore is always
// false: the scorer ranks a fully materialized slice, it does not paginate.
type SearchResult struct {
	Items       []Event       `json:"items"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	Limit       int           `json:"limit"`
	HasMore     bool          `json:"hasMore"`
	Filters     SearchFilters `json:"filters"`
	Suggestions []string      `json:"suggestions"`
}
