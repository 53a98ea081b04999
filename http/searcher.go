// Package http provides HTTP-based implementations of homeseek.Searcher and
// homeseek.Fetcher for talking to the remote search backend.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/mwidmann/homeseek"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds the wait for a search response. A request still
// pending after this long is treated as a no-response failure.
const DefaultTimeout = 30 * time.Second

// User-facing messages for failures that carry no server detail.
const (
	msgNoResponse      = "No response from search service. Please check your connection and try again."
	msgRequestSetup    = "Failed to send search request. Please try again."
	msgInvalidResponse = "Invalid response format from search service."
)

// Ensure Searcher implements homeseek.Searcher at compile time.
var _ homeseek.Searcher = (*Searcher)(nil)
var _ homeseek.HealthChecker = (*Searcher)(nil)

// Searcher performs natural-language property searches against the backend
// via POST {base}/api/search.
type Searcher struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. The client's own timeout
// takes precedence when set.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Searcher) {
		s.client = client
	}
}

// WithRateLimit throttles outgoing searches to rps requests per second with
// a burst of 1. Without this option searches are not throttled.
func WithRateLimit(rps float64) Option {
	return func(s *Searcher) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSearcher creates a Searcher for the backend at baseURL.
func NewSearcher(baseURL string, opts ...Option) *Searcher {
	s := &Searcher{
		baseURL: trimBaseURL(baseURL),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	return s
}

// searchRequest is the wire shape of the search request body.
type searchRequest struct {
	Query string `json:"query"`
}

// searchResponse is the wire shape of a successful response. The backend
// historically used "results" for the property list before settling on
// "properties"; both keys are accepted.
type searchResponse struct {
	Properties       []homeseek.Property `json:"properties"`
	Results          []homeseek.Property `json:"results"`
	StaticPageURL    string              `json:"static_page_url"`
	SearchSummary    string              `json:"search_summary"`
	LocationOverview string              `json:"location_overview"`
}

// errorResponse is the wire shape of a structured failure body.
type errorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Search submits the query and returns the parsed result. Error message
// precedence on failure: server-supplied detail, then server-supplied
// message, then a generic status-coded message; transport failures map to
// EUNAVAILABLE and request construction failures to EINTERNAL.
func (s *Searcher) Search(ctx context.Context, query string) (*homeseek.SearchResult, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
		}
	}

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, homeseek.Errorf(homeseek.EINTERNAL, "%s", msgRequestSetup)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, homeseek.Errorf(homeseek.EINTERNAL, "%s", msgRequestSetup)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// The request was sent but no response arrived (connectivity,
		// timeout, cancellation).
		return nil, homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, respBody)
	}

	return parseResult(respBody)
}

// Health probes the backend health endpoint.
func (s *Searcher) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return homeseek.Errorf(homeseek.EINTERNAL, "%s", msgRequestSetup)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return homeseek.Errorf(homeseek.EUNAVAILABLE, "search service unhealthy (status %d)", resp.StatusCode)
	}
	return nil
}

// serverError maps a non-2xx response to an application error, preferring
// the server-supplied detail, then message, then a generic status text.
func serverError(status int, body []byte) error {
	code := homeseek.EINTERNAL
	switch {
	case status == http.StatusNotFound:
		code = homeseek.ENOTFOUND
	case status >= 400 && status < 500:
		code = homeseek.EINVALID
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		code = homeseek.EUNAVAILABLE
	}

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Detail != "" {
			return homeseek.Errorf(code, "%s", er.Detail)
		}
		if er.Message != "" {
			return homeseek.Errorf(code, "%s", er.Message)
		}
	}
	return homeseek.Errorf(code, "Search request failed with status %d.", status)
}

// parseResult decodes a successful response body. Anything that is not a
// JSON object is a failure even though the HTTP status was a success.
func parseResult(body []byte) (*homeseek.SearchResult, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, homeseek.Errorf(homeseek.EINTERNAL, "%s", msgInvalidResponse)
	}

	var sr searchResponse
	if err := json.Unmarshal(trimmed, &sr); err != nil {
		return nil, homeseek.Errorf(homeseek.EINTERNAL, "%s", msgInvalidResponse)
	}

	properties := sr.Properties
	if properties == nil {
		properties = sr.Results
	}
	if properties == nil {
		properties = []homeseek.Property{}
	}

	return &homeseek.SearchResult{
		Properties:       properties,
		StaticPageURL:    sr.StaticPageURL,
		SearchSummary:    sr.SearchSummary,
		LocationOverview: sr.LocationOverview,
	}, nil
}

func trimBaseURL(base string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base
}
