package mock

import (
	"context"

	"github.com/mwidmann/homeseek"
)

var _ homeseek.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of homeseek.Fetcher.
type Fetcher struct {
	FetchPageFn func(ctx context.Context, path string) (string, error)
}

func (f *Fetcher) FetchPage(ctx context.Context, path string) (string, error) {
	return f.FetchPageFn(ctx, path)
}
