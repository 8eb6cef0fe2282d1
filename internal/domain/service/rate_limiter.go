package service

import (
	"context"
	"time"
)

// RateLimiter enforces fixed-window request limits keyed by an arbitrary
// string, typically a user ID and action pair.
type RateLimiter interface {
	// Allow records a hit against the key and reports whether the caller is
	// still within limit hits per window. The first hit of a window starts
	// the window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// Reset clears the counter for the key.
	Reset(ctx context.Context, key string) error
}
