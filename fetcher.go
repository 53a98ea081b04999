package homeseek

import "context"

// Fetcher retrieves the HTML body of a backend-generated static result page.
type Fetcher interface {
	// FetchPage retrieves the static page at the given path, as stored in
	// a RecentSearch (e.g. "/static/20250601-beach-house.html").
	// The context controls timeout and cancellation.
	FetchPage(ctx context.Context, path string) (html string, err error)
}
