// Package slog provides logging decorators for homeseek service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwidmann/homeseek"
)

// Ensure LoggingSearcher implements homeseek.Searcher.
var _ homeseek.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with structured logging.
type LoggingSearcher struct {
	next   homeseek.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next homeseek.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (result *homeseek.SearchResult, err error) {
	defer func(begin time.Time) {
		count := 0
		if result != nil {
			count = len(result.Properties)
		}
		s.logger.Info("search",
			"query", query,
			"properties", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
