package ratelimit

import (
	"context"
	"time"
)

// RateLimiter counts requests per key over a sliding window.
type RateLimiter interface {
	// Allow records a request for key and reports whether it fits in the window.
	Allow(ctx context.Context, key string) (bool, error)
	// Remaining reports how many requests key may still make in the current window.
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
	Window() time.Duration
}
