package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository using Redis as the backing store.
// Bindings are stored as plain strings under key: "session:<handle>".
// A zero TTL stores the binding without expiry.
type RedisRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-based session repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisRepository {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisRepository) key(handle string) string {
	return r.prefix + handle
}

func (r *RedisRepository) Bind(ctx context.Context, handle, username string) error {
	return r.client.Set(ctx, r.key(handle), username, r.ttl).Err()
}

func (r *RedisRepository) Identity(ctx context.Context, handle string) (string, error) {
	username, err := r.client.Get(ctx, r.key(handle)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return username, nil
}

func (r *RedisRepository) Unbind(ctx context.Context, handle string) error {
	return r.client.Del(ctx, r.key(handle)).Err()
}
