package redis

import (
	"context"
	"fmt"
	"time"

	"family-wallet-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStatusCache implements ports.SessionStatusCache using Redis. It
// shields the database from status polling by clients while an STK push is
// in flight.
type SessionStatusCache struct {
	client *goredis.Client
	prefix string
}

// NewSessionStatusCache creates a new Redis-backed session status cache.
func NewSessionStatusCache(client *goredis.Client) *SessionStatusCache {
	return &SessionStatusCache{
		client: client,
		prefix: "session_status:",
	}
}

// Get retrieves a cached session status. The second return value is false
// when the key does not exist.
func (c *SessionStatusCache) Get(ctx context.Context, sessionID string) (domain.SessionStatus, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+sessionID).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis session status get: %w", err)
	}
	return domain.SessionStatus(val), true, nil
}

// Set stores a session status with TTL.
func (c *SessionStatusCache) Set(ctx context.Context, sessionID string, status domain.SessionStatus, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+sessionID, string(status), ttl).Err(); err != nil {
		return fmt.Errorf("redis session status set: %w", err)
	}
	return nil
}
