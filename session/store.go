package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps connectivity failures of the backing store.
// Lookup misses are reported as [redis.Nil], never as this error.
var ErrRedisUnavailable = errors.New("redis unavailable")

// Store is a Redis-backed token cache. Keys are the configured prefix
// concatenated with the raw token; values are the serialized user id.
type Store struct {
	redis  redis.UniversalClient
	prefix string
}

// NewStore creates a session [Store] backed by the given Redis client.
// prefix sets the key namespace separating session entries from unrelated
// cache usage sharing the same database.
func NewStore(redis redis.UniversalClient, prefix string) *Store {
	return &Store{
		redis:  redis,
		prefix: prefix,
	}
}

func (s *Store) key(token string) string {
	return s.prefix + token
}

// Save creates or overwrites the entry for token with the given TTL, the
// expiry clock starting now. The value write and TTL arming are a single
// Redis SET, so a live entry always carries its expiry.
//
//	Performance: 1 Redis SET.
func (s *Store) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	if err := s.redis.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// Get returns the user id stored for token. A token that is absent or past
// its TTL yields [redis.Nil]; the two cases are indistinguishable. Get never
// touches the entry's TTL.
//
//	Performance: 1 Redis GET.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.redis.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return userID, nil
}

// Delete removes the entry for token. Deleting an absent token is not an
// error.
//
//	Performance: 1 Redis DEL.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// TTL reports the remaining lifetime of the entry for token, or [redis.Nil]
// when no live entry exists. Inspection only; the request path never calls
// this.
func (s *Store) TTL(ctx context.Context, token string) (time.Duration, error) {
	ttl, err := s.redis.TTL(ctx, s.key(token)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	// go-redis reports -2 (no key) and -1 (no expiry) as negative durations.
	if ttl < 0 {
		return 0, redis.Nil
	}

	return ttl, nil
}

// Ping returns a point-in-time Redis availability check and latency. Used
// for operational health reporting only, never for request-path decisions.
func (s *Store) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return time.Since(start), fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return time.Since(start), nil
}
