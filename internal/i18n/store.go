package i18n

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPreferenceStore keeps visitor language choices in Redis under
// "language:{visitorID}" with a TTL.
type RedisPreferenceStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPreferenceStore creates a Redis-backed preference store.
func NewRedisPreferenceStore(client *redis.Client, ttl time.Duration) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client, ttl: ttl}
}

func (s *RedisPreferenceStore) key(visitorID string) string {
	return PreferenceKey + ":" + visitorID
}

// Load returns the stored language code, or empty when none is stored.
func (s *RedisPreferenceStore) Load(ctx context.Context, visitorID string) (string, error) {
	v, err := s.client.Get(ctx, s.key(visitorID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get language preference: %w", err)
	}
	return v, nil
}

// Save stores the language code, refreshing the TTL.
func (s *RedisPreferenceStore) Save(ctx context.Context, visitorID, lang string) error {
	if err := s.client.Set(ctx, s.key(visitorID), lang, s.ttl).Err(); err != nil {
		return fmt.Errorf("set language preference: %w", err)
	}
	return nil
}
