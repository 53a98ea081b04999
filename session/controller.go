// Package session implements the search session controller: the owner of
// query, result, and history state for one running instance of the client.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/mwidmann/homeseek"
)

// State is a snapshot of the controller's public state.
type State struct {
	// CurrentQuery is the last submitted query text.
	CurrentQuery string

	// Results holds the most recent successful search result. Never nil;
	// starts empty and is left unchanged by failed searches.
	Results *homeseek.SearchResult

	// Loading reports whether a search is in flight.
	Loading bool

	// ErrorMessage is the user-visible message of the last failure, or ""
	// after a success or reset.
	ErrorMessage string

	// RecentSearches is the current history, most recent first.
	RecentSearches []*homeseek.RecentSearch
}

// Controller mediates between user input, the remote search call, and the
// persisted recent-search history.
//
// Overlapping submits are permitted. Each submit takes a generation token;
// a completion only applies its outcome while its token is still the
// latest, so a stale response can never overwrite the result of a newer
// search.
type Controller struct {
	searcher  homeseek.Searcher
	history   homeseek.HistoryStore
	navigator homeseek.Navigator

	mu    sync.Mutex
	gen   uint64
	state State
}

// NewController creates a Controller and loads the persisted history.
// A missing or unreadable history loads as empty; no error is surfaced.
func NewController(ctx context.Context, searcher homeseek.Searcher, history homeseek.HistoryStore, navigator homeseek.Navigator) *Controller {
	c := &Controller{
		searcher:  searcher,
		history:   history,
		navigator: navigator,
		state:     State{Results: &homeseek.SearchResult{}},
	}
	if entries, err := history.Recent(ctx); err == nil {
		c.state.RecentSearches = entries
	}
	return c
}

// State returns a snapshot of the current state. The recent-search slice is
// shared but never mutated in place.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one search. An empty or whitespace-only query fails locally
// with no backend call. On success the result replaces the current state
// wholesale and a history entry is recorded; on failure the previous result
// is preserved and the user-visible message is stored. The loading flag is
// released on every exit path of the winning request.
//
// The returned error carries the same message stored in the state, for
// callers that want to propagate an exit status.
func (c *Controller) Submit(ctx context.Context, query string) error {
	trimmed, err := homeseek.ValidateQuery(query)
	if err != nil {
		c.mu.Lock()
		c.state.ErrorMessage = homeseek.ErrorMessage(err)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state.CurrentQuery = trimmed
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.mu.Unlock()

	result, err := c.searcher.Search(ctx, trimmed)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer submit superseded this one; discard the outcome.
	if gen != c.gen {
		return nil
	}
	c.state.Loading = false

	if err != nil {
		c.state.ErrorMessage = homeseek.ErrorMessage(err)
		return err
	}

	c.state.Results = result

	entry := &homeseek.RecentSearch{
		Query:         trimmed,
		StaticPageURL: result.StaticPageURL,
		Timestamp:     time.Now().UTC(),
	}
	if entries, recordErr := c.history.Record(ctx, entry); recordErr == nil {
		c.state.RecentSearches = entries
	} else {
		// The search itself succeeded; a history write failure must not
		// fail the session. Keep the in-memory list consistent instead.
		c.state.RecentSearches = homeseek.PushRecent(c.state.RecentSearches, entry)
	}
	return nil
}

// NewSearch resets the session for a fresh query: clears the current query,
// the result set, and any error. Recent searches and the loading flag are
// untouched.
func (c *Controller) NewSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CurrentQuery = ""
	c.state.Results = &homeseek.SearchResult{}
	c.state.ErrorMessage = ""
}

// SelectRecent replays a recent search. Entries that carry a static page URL
// navigate to the cached page without touching search state or issuing a
// search call; entries without one re-submit the stored query.
func (c *Controller) SelectRecent(ctx context.Context, entry *homeseek.RecentSearch) error {
	if entry.StaticPageURL != "" {
		return c.navigator.OpenPage(ctx, entry.StaticPageURL)
	}
	return c.Submit(ctx, entry.Query)
}
