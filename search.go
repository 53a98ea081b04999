package homeseek

import (
	"context"
	"strings"
)

// Property represents a single listing as returned by the search backend.
// Fields are read-only on the client; absent fields keep their zero values
// and the renderer supplies display fallbacks.
type Property struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    int      `json:"price"`
	Location string   `json:"location"`
	Summary  string   `json:"summary"`
	Features []string `json:"features"`
	ImageURL string   `json:"image_url"`
}

// SearchResult is the full response of one search call. It replaces the
// previous result wholesale; the client never re-sorts Properties (order is
// backend relevance order).
type SearchResult struct {
	Properties       []Property `json:"properties"`
	StaticPageURL    string     `json:"static_page_url"`
	SearchSummary    string     `json:"search_summary"`
	LocationOverview string     `json:"location_overview"`
}

// Searcher performs a natural-language property search against the backend.
type Searcher interface {
	// Search submits the query and returns the parsed result.
	// Absent optional response fields are tolerated (empty values).
	// Failures carry an application error code: EINVALID for backend
	// validation, EUNAVAILABLE when no response arrived, EINTERNAL for
	// request construction or malformed-response failures.
	Search(ctx context.Context, query string) (*SearchResult, error)
}

// HealthChecker reports whether the search backend is reachable.
type HealthChecker interface {
	// Health probes the backend and returns an application error when it
	// is unreachable or unhealthy.
	Health(ctx context.Context) error
}

// ValidateQuery returns the trimmed query, or an EINVALID error when the
// query is empty or whitespace-only. Validation is purely local; callers
// must not contact the backend when it fails.
func ValidateQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", Errorf(EINVALID, "Please enter a search query")
	}
	return trimmed, nil
}
