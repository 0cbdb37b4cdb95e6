package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// SessionStore keeps opaque session tokens in Redis.
// Key format: session:<uuid> → user id, expiring after the configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create issues a new random token for the user.
func (s *SessionStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to the token, or
// domain.ErrSessionNotFound when the token is unknown or expired.
func (s *SessionStore) Resolve(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("session resolve: %w", err)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session resolve: malformed value %q: %w", val, err)
	}
	return id, nil
}

// Destroy invalidates the token. Destroying an unknown token is not an error.
func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
