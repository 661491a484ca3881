package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements Cache on top of a Redis server, letting multiple
// optimizer runs (e.g. a fleet of benchmark workers) share cached orderings.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to a Redis server at addr and returns a Cache
// backed by it. The connection is verified with a PING before returning.
func NewRedisCache(ctx context.Context, addr string) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis, retrying the errors [isTransient] accepts.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	var found bool

	err := RetryWithBackoff(ctx, func() error {
		d, err := c.client.Get(ctx, key).Bytes()
		switch {
		case err == redis.Nil:
			return nil
		case isTransient(err):
			return Retryable(err)
		case err != nil:
			return err
		}
		data, found = d, true
		return nil
	})
	return data, found, err
}

// Set stores a value in Redis. A zero ttl stores the value without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		err := c.client.Set(ctx, key, data, ttl).Err()
		if isTransient(err) {
			return Retryable(err)
		}
		return err
	})
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// isTransient reports whether err is worth retrying: every non-nil error
// except redis.Nil and context cancellation or deadline errors. Command-level
// errors are not told apart from connection failures and are retried too.
func isTransient(err error) bool {
	return err != nil && err != redis.Nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Close closes the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
