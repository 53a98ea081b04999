package session_test

import (
	"context"
	"testing"

	"github.com/mwidmann/homeseek"
	"github.com/mwidmann/homeseek/mock"
	"github.com/mwidmann/homeseek/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, searcher homeseek.Searcher) *session.Controller {
	t.Helper()
	return session.NewController(context.Background(), searcher, mock.InMemoryHistory(), &mock.Navigator{
		OpenPageFn: func(context.Context, string) error { return nil },
	})
}

func TestController_Submit(t *testing.T) {
	t.Parallel()

	t.Run("whitespace-only query fails locally without a search call", func(t *testing.T) {
		t.Parallel()

		var calls int
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				calls++
				return &homeseek.SearchResult{}, nil
			},
		}
		c := newController(t, searcher)

		err := c.Submit(context.Background(), "   \t ")

		require.Error(t, err)
		assert.Equal(t, 0, calls)
		state := c.State()
		assert.Equal(t, "Please enter a search query", state.ErrorMessage)
		assert.False(t, state.Loading)
	})

	t.Run("successful search replaces results and records history", func(t *testing.T) {
		t.Parallel()

		query := "modern beach house in Maui under 2 million"
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q string) (*homeseek.SearchResult, error) {
				assert.Equal(t, query, q)
				return &homeseek.SearchResult{
					Properties: []homeseek.Property{{
						Title:    "Beach Villa",
						Price:    1800000,
						Location: "Maui, HI",
						Summary:  "Oceanfront villa with private beach access.",
						Features: []string{"oceanfront", "3BR"},
					}},
					StaticPageURL:    "/pages/abc123",
					SearchSummary:    "Found 1 match",
					LocationOverview: "## Maui\nPopular coastal area.",
				}, nil
			},
		}
		c := newController(t, searcher)

		err := c.Submit(context.Background(), query)

		require.NoError(t, err)
		state := c.State()
		assert.False(t, state.Loading)
		assert.Empty(t, state.ErrorMessage)
		require.Len(t, state.Results.Properties, 1)
		assert.Equal(t, "Beach Villa", state.Results.Properties[0].Title)
		assert.Equal(t, "Found 1 match", state.Results.SearchSummary)
		require.NotEmpty(t, state.RecentSearches)
		assert.Equal(t, query, state.RecentSearches[0].Query)
		assert.Equal(t, "/pages/abc123", state.RecentSearches[0].StaticPageURL)
		assert.False(t, state.RecentSearches[0].Timestamp.IsZero())
	})

	t.Run("trims query before searching and recording", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q string) (*homeseek.SearchResult, error) {
				assert.Equal(t, "homes in Boston", q)
				return &homeseek.SearchResult{}, nil
			},
		}
		c := newController(t, searcher)

		require.NoError(t, c.Submit(context.Background(), "  homes in Boston \n"))
		assert.Equal(t, "homes in Boston", c.State().RecentSearches[0].Query)
	})

	t.Run("failure preserves previous results", func(t *testing.T) {
		t.Parallel()

		var fail bool
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				if fail {
					return nil, homeseek.Errorf(homeseek.EINTERNAL, "search index unavailable")
				}
				return &homeseek.SearchResult{
					Properties: []homeseek.Property{{Title: "First Match"}},
				}, nil
			},
		}
		c := newController(t, searcher)

		require.NoError(t, c.Submit(context.Background(), "first query"))
		fail = true
		err := c.Submit(context.Background(), "second query")

		require.Error(t, err)
		state := c.State()
		assert.Equal(t, "search index unavailable", state.ErrorMessage)
		assert.False(t, state.Loading)
		require.Len(t, state.Results.Properties, 1)
		assert.Equal(t, "First Match", state.Results.Properties[0].Title)
	})

	t.Run("no-response failure releases the loading flag", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				return nil, homeseek.Errorf(homeseek.EUNAVAILABLE, "No response from search service. Please check your connection and try again.")
			},
		}
		c := newController(t, searcher)

		err := c.Submit(context.Background(), "anything")

		require.Error(t, err)
		state := c.State()
		assert.False(t, state.Loading)
		assert.Contains(t, state.ErrorMessage, "No response from search service")
	})

	t.Run("repeated query keeps a single history entry at the front", func(t *testing.T) {
		t.Parallel()

		var page string
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				return &homeseek.SearchResult{StaticPageURL: page}, nil
			},
		}
		c := newController(t, searcher)

		page = "/pages/first"
		require.NoError(t, c.Submit(context.Background(), "condos in Chicago"))
		require.NoError(t, c.Submit(context.Background(), "land near Austin"))
		page = "/pages/second"
		require.NoError(t, c.Submit(context.Background(), "condos in Chicago"))

		recent := c.State().RecentSearches
		require.Len(t, recent, 2)
		assert.Equal(t, "condos in Chicago", recent[0].Query)
		assert.Equal(t, "/pages/second", recent[0].StaticPageURL)
		assert.Equal(t, "land near Austin", recent[1].Query)
	})

	t.Run("history never exceeds the maximum", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				return &homeseek.SearchResult{}, nil
			},
		}
		c := newController(t, searcher)

		for i := 0; i < homeseek.MaxRecentSearches+5; i++ {
			require.NoError(t, c.Submit(context.Background(), "query "+string(rune('a'+i))))
			assert.LessOrEqual(t, len(c.State().RecentSearches), homeseek.MaxRecentSearches)
		}
		assert.Len(t, c.State().RecentSearches, homeseek.MaxRecentSearches)
	})

	t.Run("stale completion does not overwrite a newer result", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q string) (*homeseek.SearchResult, error) {
				if q == "slow query" {
					close(started)
					<-release
					return &homeseek.SearchResult{SearchSummary: "stale"}, nil
				}
				return &homeseek.SearchResult{SearchSummary: "fresh"}, nil
			},
		}
		c := newController(t, searcher)

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.Background(), "slow query") }()
		<-started

		require.NoError(t, c.Submit(context.Background(), "fast query"))
		close(release)
		require.NoError(t, <-done)

		state := c.State()
		assert.Equal(t, "fresh", state.Results.SearchSummary)
		assert.False(t, state.Loading)
		require.Len(t, state.RecentSearches, 1)
		assert.Equal(t, "fast query", state.RecentSearches[0].Query)
	})
}

func TestController_NewSearch(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
			return &homeseek.SearchResult{
				Properties: []homeseek.Property{{Title: "Kept Around"}},
			}, nil
		},
	}
	c := newController(t, searcher)
	require.NoError(t, c.Submit(context.Background(), "cabins in Vermont"))

	c.NewSearch()

	state := c.State()
	assert.Empty(t, state.CurrentQuery)
	assert.Empty(t, state.Results.Properties)
	assert.Empty(t, state.ErrorMessage)
	assert.Len(t, state.RecentSearches, 1, "new search must not touch history")
}

func TestController_SelectRecent(t *testing.T) {
	t.Parallel()

	t.Run("entry with static page navigates without searching", func(t *testing.T) {
		t.Parallel()

		var searchCalls, openCalls int
		var openedPath string
		searcher := &mock.Searcher{
			SearchFn: func(context.Context, string) (*homeseek.SearchResult, error) {
				searchCalls++
				return &homeseek.SearchResult{}, nil
			},
		}
		navigator := &mock.Navigator{
			OpenPageFn: func(_ context.Context, path string) error {
				openCalls++
				openedPath = path
				return nil
			},
		}
		c := session.NewController(context.Background(), searcher, mock.InMemoryHistory(), navigator)

		err := c.SelectRecent(context.Background(), &homeseek.RecentSearch{
			Query:         "beach house in Maui",
			StaticPageURL: "/pages/abc123",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, openCalls)
		assert.Equal(t, "/pages/abc123", openedPath)
		assert.Equal(t, 0, searchCalls, "navigation must not issue a search call")
	})

	t.Run("entry without static page re-submits the query", func(t *testing.T) {
		t.Parallel()

		var searched string
		searcher := &mock.Searcher{
			SearchFn: func(_ context.Context, q string) (*homeseek.SearchResult, error) {
				searched = q
				return &homeseek.SearchResult{}, nil
			},
		}
		c := newController(t, searcher)

		err := c.SelectRecent(context.Background(), &homeseek.RecentSearch{Query: "lofts in Denver"})

		require.NoError(t, err)
		assert.Equal(t, "lofts in Denver", searched)
		assert.Equal(t, "lofts in Denver", c.State().CurrentQuery)
	})
}

func TestNewController_LoadsPersistedHistory(t *testing.T) {
	t.Parallel()

	t.Run("loads existing entries", func(t *testing.T) {
		t.Parallel()

		history := mock.InMemoryHistory(
			&homeseek.RecentSearch{Query: "newest"},
			&homeseek.RecentSearch{Query: "oldest"},
		)
		c := session.NewController(context.Background(), &mock.Searcher{}, history, &mock.Navigator{})

		recent := c.State().RecentSearches
		require.Len(t, recent, 2)
		assert.Equal(t, "newest", recent[0].Query)
	})

	t.Run("load failure yields an empty history and no error", func(t *testing.T) {
		t.Parallel()

		history := &mock.HistoryStore{
			RecentFn: func(context.Context) ([]*homeseek.RecentSearch, error) {
				return nil, homeseek.Errorf(homeseek.EINTERNAL, "disk gone")
			},
		}
		c := session.NewController(context.Background(), &mock.Searcher{}, history, &mock.Navigator{})

		state := c.State()
		assert.Empty(t, state.RecentSearches)
		assert.Empty(t, state.ErrorMessage)
	})
}
