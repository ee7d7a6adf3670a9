package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps live login sessions in Redis.
// Key format: session:<jti>, value: username, TTL matching the token TTL.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, jti, username string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(jti), username, ttl).Err()
}

// Exists reports whether the session is still live. Logout deletes the key;
// expiry lets it lapse.
func (s *SessionStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) Delete(ctx context.Context, jti string) error {
	return s.client.Del(ctx, s.key(jti)).Err()
}

func (s *SessionStore) key(jti string) string {
	return "session:" + jti
}
