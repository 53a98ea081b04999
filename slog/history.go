package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwidmann/homeseek"
)

// Ensure LoggingHistoryStore implements homeseek.HistoryStore.
var _ homeseek.HistoryStore = (*LoggingHistoryStore)(nil)

// LoggingHistoryStore wraps a HistoryStore with structured logging.
type LoggingHistoryStore struct {
	next   homeseek.HistoryStore
	logger *slog.Logger
}

// NewLoggingHistoryStore creates a new LoggingHistoryStore.
func NewLoggingHistoryStore(next homeseek.HistoryStore, logger *slog.Logger) *LoggingHistoryStore {
	return &LoggingHistoryStore{next: next, logger: logger}
}

// Recent delegates to the wrapped store and logs the operation.
func (s *LoggingHistoryStore) Recent(ctx context.Context) (entries []*homeseek.RecentSearch, err error) {
	defer func(begin time.Time) {
		s.logger.Info("history load",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Recent(ctx)
}

// Record delegates to the wrapped store and logs the operation.
func (s *LoggingHistoryStore) Record(ctx context.Context, entry *homeseek.RecentSearch) (entries []*homeseek.RecentSearch, err error) {
	defer func(begin time.Time) {
		s.logger.Info("history record",
			"query", entry.Query,
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Record(ctx, entry)
}
