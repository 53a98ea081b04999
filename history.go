package homeseek

import (
	"context"
	"time"
)

// MaxRecentSearches is the maximum number of entries kept in the
// recent-search history.
const MaxRecentSearches = 10

// RecentSearch is a persisted record of a past query, its capture time, and
// an optional link to the backend-generated static result page.
type RecentSearch struct {
	Query         string    `json:"query"`
	StaticPageURL string    `json:"staticPageUrl,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Validate returns an error if the entry contains invalid fields.
func (r *RecentSearch) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "recent search query required")
	}
	return nil
}

// PushRecent inserts entry at the front of entries and returns the updated
// list. Any existing entry with the same query (exact string match, not
// case-folded) is removed first, so a query occurs at most once and a repeat
// search moves to the front with the newer timestamp and static page URL.
// The result is truncated to MaxRecentSearches entries, most recent first.
func PushRecent(entries []*RecentSearch, entry *RecentSearch) []*RecentSearch {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	updated := make([]*RecentSearch, 0, len(entries)+1)
	updated = append(updated, entry)
	for _, e := range entries {
		if e.Query == entry.Query {
			continue
		}
		updated = append(updated, e)
	}

	if len(updated) > MaxRecentSearches {
		updated = updated[:MaxRecentSearches]
	}
	return updated
}

// HistoryStore persists the recent-search list.
//
// The store is the single owner of the persisted state: Record performs
// read-modify-persist as one atomic operation and returns the full updated
// list, so callers never hold a copy that can drift from storage.
type HistoryStore interface {
	// Recent returns the persisted entries, most recent first. A missing
	// or unparsable history reads as empty, never as an error.
	Recent(ctx context.Context) ([]*RecentSearch, error)

	// Record inserts entry per the PushRecent rules, rewrites the
	// persisted list, and returns the updated entries.
	Record(ctx context.Context, entry *RecentSearch) ([]*RecentSearch, error)
}
