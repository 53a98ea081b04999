package mock

import (
	"context"

	"github.com/mwidmann/homeseek"
)

var _ homeseek.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of homeseek.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) (*homeseek.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) (*homeseek.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
