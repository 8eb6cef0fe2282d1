package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// redisRateLimiter implements a fixed-window counter on Redis. When Redis is
// unreachable it fails open by default so an outage does not lock every user
// out of authentication; failClosed flips that for stricter deployments.
type redisRateLimiter struct {
	client     *redis.Client
	logger     *slog.Logger
	failClosed bool
}

// NewRateLimiter is the constructor for redisRateLimiter.
func NewRateLimiter(client *redis.Client, logger *slog.Logger, cfg *config.Config) service.RateLimiter {
	failClosed := false
	if cfg != nil && cfg.Auth != nil {
		failClosed = cfg.Auth.RateLimitFailClosed
	}

	return &redisRateLimiter{
		client:     client,
		logger:     logger,
		failClosed: failClosed,
	}
}

// Allow records a hit against the key and reports whether the caller is still
// within limit hits per window.
func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := rateLimitKeyPrefix + key

	count, err := l.client.Incr(ctx, fullKey).Result()
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Rate limiter unavailable",
			slog.String("key", key),
			slog.Any("error", err),
		)

		if l.failClosed {
			return false, errors.Wrap(err, "rate limiter unavailable")
		}

		return true, nil
	}

	// The first hit of a window starts the window.
	if count == 1 {
		if err := l.client.Expire(ctx, fullKey, window).Err(); err != nil {
			l.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to set rate limit window",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return count <= int64(limit), nil
}

// Reset clears the counter for the key.
func (l *redisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, rateLimitKeyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset rate limit counter")
	}

	return nil
}
