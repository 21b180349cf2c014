package cache

import (
	"context"
	"time"
)

// Store is the shared key/value cache used for rate limiting and read-through caching.
type Store interface {
	IncrementWithTTL(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Purger is implemented by stores that keep expired rows until removed.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
