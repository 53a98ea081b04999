package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mwidmann/homeseek"
)

// Compile-time interface verification.
var _ homeseek.HistoryStore = (*HistoryStore)(nil)

// HistoryStore implements homeseek.HistoryStore using SQLite. Entries are
// ordered by an explicit position column, 0 being the most recent.
type HistoryStore struct {
	db *DB
}

// NewHistoryStore creates a new HistoryStore.
func NewHistoryStore(db *DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Recent returns the persisted entries, most recent first.
func (s *HistoryStore) Recent(ctx context.Context) ([]*homeseek.RecentSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, static_page_url, searched_at
		FROM recent_searches
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*homeseek.RecentSearch
	for rows.Next() {
		var entry homeseek.RecentSearch
		var searchedAt string

		if err := rows.Scan(&entry.Query, &entry.StaticPageURL, &searchedAt); err != nil {
			return nil, err
		}

		ts, parseErr := time.Parse(time.RFC3339Nano, searchedAt)
		if parseErr != nil {
			// A hand-edited or corrupt timestamp drops that row, not
			// the rows around it.
			continue
		}
		entry.Timestamp = ts
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// Record inserts entry with the de-duplicating insert rule as a single
// transaction: remove any prior entry for the same query, shift the rest
// down, insert at the front, and drop everything past the entry cap.
func (s *HistoryStore) Record(ctx context.Context, entry *homeseek.RecentSearch) ([]*homeseek.RecentSearch, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_searches WHERE query = ?`, entry.Query); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE recent_searches SET position = position + 1`); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO recent_searches (id, query, static_page_url, searched_at, position)
		VALUES (?, ?, ?, ?, 0)
	`, uuid.New().String(), entry.Query, entry.StaticPageURL, entry.Timestamp.Format(time.RFC3339Nano)); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_searches WHERE position >= ?`, homeseek.MaxRecentSearches); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.Recent(ctx)
}
