package mock

import (
	"context"

	"github.com/mwidmann/homeseek"
)

var _ homeseek.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of homeseek.HistoryStore.
type HistoryStore struct {
	RecentFn func(ctx context.Context) ([]*homeseek.RecentSearch, error)
	RecordFn func(ctx context.Context, entry *homeseek.RecentSearch) ([]*homeseek.RecentSearch, error)
}

func (s *HistoryStore) Recent(ctx context.Context) ([]*homeseek.RecentSearch, error) {
	return s.RecentFn(ctx)
}

func (s *HistoryStore) Record(ctx context.Context, entry *homeseek.RecentSearch) ([]*homeseek.RecentSearch, error) {
	return s.RecordFn(ctx, entry)
}

// InMemoryHistory returns a HistoryStore mock backed by an in-memory list
// with the real insert semantics. Useful when a test only cares that
// history behaves, not how it is called.
func InMemoryHistory(initial ...*homeseek.RecentSearch) *HistoryStore {
	entries := initial
	return &HistoryStore{
		RecentFn: func(context.Context) ([]*homeseek.RecentSearch, error) {
			return entries, nil
		},
		RecordFn: func(_ context.Context, entry *homeseek.RecentSearch) ([]*homeseek.RecentSearch, error) {
			entries = homeseek.PushRecent(entries, entry)
			return entries, nil
		},
	}
}
