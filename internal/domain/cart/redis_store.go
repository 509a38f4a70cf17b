// internal/domain/cart/redis_store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps carts as JSON blobs in Redis with a sliding expiration
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get retrieves the cart for a session, or a fresh empty cart when none
// exists yet
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return NewCart(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &c, nil
}

// Save stores the cart and refreshes its expiration
func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.client.Set(ctx, cartKey(c.SessionID), data, s.ttl).Err()
}

// Delete removes the cart for a session
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
