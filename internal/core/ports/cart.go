package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CartStore persists a user's cart lines under a per-user key. Load returns
// (nil, nil) when no cart is stored; malformed records count as absent.
type CartStore interface {
	Save(ctx context.Context, userID string, items []domain.CartItem) error
	Load(ctx context.Context, userID string) ([]domain.CartItem, error)
	Delete(ctx context.Context, userID string) error
}

// CartService owns per-user carts and their derived totals. Store failures
// degrade to in-memory state and are never surfaced to callers.
type CartService interface {
	Add(ctx context.Context, userID string, p domain.Product)
	Remove(ctx context.Context, userID string, productID int)
	Items(ctx context.Context, userID string) []domain.CartItem
	Total(ctx context.Context, userID string) float64
	Clear(ctx context.Context, userID string)
}
