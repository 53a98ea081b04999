package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwidmann/homeseek"
)

// DefaultPageTimeout is the timeout for static page fetches.
const DefaultPageTimeout = 10 * time.Second

// Ensure PageService implements homeseek.Fetcher at compile time.
var _ homeseek.Fetcher = (*PageService)(nil)

// PageService retrieves backend-generated static result pages.
type PageService struct {
	baseURL string
	client  *http.Client
}

// NewPageService creates a PageService for the backend at baseURL.
// A nil client uses a default client with DefaultPageTimeout.
func NewPageService(baseURL string, client *http.Client) *PageService {
	if client == nil {
		client = &http.Client{Timeout: DefaultPageTimeout}
	}
	return &PageService{
		baseURL: trimBaseURL(baseURL),
		client:  client,
	}
}

// PageURL returns the absolute URL for a static page path.
func (s *PageService) PageURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.baseURL + path
}

// FetchPage retrieves the HTML body of the static page at path.
func (s *PageService) FetchPage(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.PageURL(path), nil)
	if err != nil {
		return "", homeseek.Errorf(homeseek.EINTERNAL, "failed to build static page request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", homeseek.Errorf(homeseek.ENOTFOUND, "static page %q is no longer available", path)
	}
	if resp.StatusCode != http.StatusOK {
		return "", homeseek.Errorf(homeseek.EINTERNAL, "static page request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", homeseek.Errorf(homeseek.EUNAVAILABLE, "%s", msgNoResponse)
	}
	return string(body), nil
}
