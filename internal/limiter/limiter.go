package limiter

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	maxAttempts = 10
	window      = 15 * time.Minute
	keyPrefix   = "login_attempts:"
)

// LoginLimiter throttles credential attempts per email. Without a redis
// address it allows everything, and redis errors fail open so the API never
// goes down with the cache.
type LoginLimiter struct {
	rdb *redis.Client
}

func New(addr string) *LoginLimiter {
	l := &LoginLimiter{}
	if addr != "" {
		l.rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	return l
}

func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l == nil || l.rdb == nil {
		return true
	}

	key := keyPrefix + email
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, window)
	}

	return count <= maxAttempts
}

func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l == nil || l.rdb == nil {
		return
	}
	l.rdb.Del(ctx, keyPrefix+email)
}
