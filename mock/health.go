package mock

import (
	"context"

	"github.com/mwidmann/homeseek"
)

var _ homeseek.HealthChecker = (*HealthChecker)(nil)

// HealthChecker is a mock implementation of homeseek.HealthChecker.
type HealthChecker struct {
	HealthFn func(ctx context.Context) error
}

func (h *HealthChecker) Health(ctx context.Context) error {
	return h.HealthFn(ctx)
}
