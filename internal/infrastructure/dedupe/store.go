// Package dedupe provides idempotent handling of redelivered commerce
// messages, keyed by message id.
package dedupe

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a processed message id is remembered. After
// expiry a redelivered message is processed again; the downstream
// profile semantics are idempotent enough to tolerate that.
const DefaultTTL = 24 * time.Hour

// DefaultKeyPrefix namespaces dedupe keys in Redis.
const DefaultKeyPrefix = "mktsync:msg:"

// Store records processed message ids with a TTL. MarkProcessed is an
// atomic check-and-set: it returns true exactly once per key per TTL
// window.
type Store interface {
	MarkProcessed(ctx context.Context, messageID string, ttl time.Duration) (bool, error)
}

// RedisStore implements Store on Redis SET NX.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed dedupe store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: DefaultKeyPrefix,
	}
}

// MarkProcessed marks the message id as processed and reports whether
// it was new.
func (s *RedisStore) MarkProcessed(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, s.prefix+messageID, "1", ttl).Result()
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)
