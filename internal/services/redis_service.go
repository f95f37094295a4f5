package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles generator calls per user using Redis counters.
// With no Redis configured every request is allowed.
type RateLimiter struct {
	client *redis.Client
	limit  int
}

// NewRateLimiter creates a rate limiter from the application config
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		client: database.GetRedis(),
		limit:  config.AppConfig.GeneratorRateLimit,
	}
}

// Allow reports whether the user may make another generator request in
// the current minute window
func (r *RateLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	if r.client == nil || r.limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("generator_rate:%s:%s", userID, time.Now().Format("200601021504"))

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in this window sets the expiry
		if err := r.client.Expire(ctx, key, time.Minute).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}
