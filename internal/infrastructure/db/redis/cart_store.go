package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CartStore persists carts under one key per user, reusing the same
// mechanism as the session record. Key format: cart:<user_id>
type CartStore struct {
	client *redis.Client
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Save(ctx context.Context, userID string, items []domain.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), b, 0).Err(); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

// Load reads the persisted cart. Absent and malformed records both yield
// (nil, nil); malformed records are cleared.
func (s *CartStore) Load(ctx context.Context, userID string) ([]domain.CartItem, error) {
	b, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(b, &items); err != nil {
		_ = s.client.Del(ctx, s.key(userID)).Err()
		return nil, nil
	}
	return items, nil
}

func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (s *CartStore) key(userID string) string {
	return "cart:" + userID
}
