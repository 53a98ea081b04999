package mock

import (
	"context"

	"github.com/mwidmann/homeseek"
)

var _ homeseek.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of homeseek.Navigator.
type Navigator struct {
	OpenPageFn func(ctx context.Context, path string) error
}

func (n *Navigator) OpenPage(ctx context.Context, path string) error {
	return n.OpenPageFn(ctx, path)
}
