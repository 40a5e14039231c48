package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter is a fixed-window limiter shared by every replica that
// talks to the same Redis. Each window has its own counter key that
// expires with the window.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := r.windowKey(key, r.now())

	count, err := r.client.Do(ctx, r.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		cmd := r.client.B().Pexpire().Key(windowKey).Milliseconds(r.window.Milliseconds()).Build()
		if err := r.client.Do(ctx, cmd).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}

func (r *RedisLimiter) windowKey(key string, now time.Time) string {
	window := now.UnixMilli() / r.window.Milliseconds()
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, window)
}
