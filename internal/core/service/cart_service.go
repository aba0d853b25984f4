package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// CartService keeps one cart per user. Lines are kept in insertion order;
// adding a product already in the cart increments its quantity instead of
// duplicating the row. Carts live for the process lifetime and are mirrored
// to an optional store so they survive restarts; store failures degrade to
// in-memory state.
type CartService struct {
	store ports.CartStore // nil = in-memory only
	log   zerolog.Logger

	mu       sync.Mutex
	carts    map[string][]domain.CartItem
	hydrated map[string]bool
}

func NewCartService(store ports.CartStore, log zerolog.Logger) *CartService {
	return &CartService{
		store:    store,
		log:      log,
		carts:    make(map[string][]domain.CartItem),
		hydrated: make(map[string]bool),
	}
}

// Add appends the product to the user's cart, merging by product id.
func (s *CartService) Add(ctx context.Context, userID string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity++
			s.persist(ctx, userID, items)
			return
		}
	}
	s.carts[userID] = append(items, domain.CartItem{Product: p, Quantity: 1})
	s.persist(ctx, userID, s.carts[userID])
}

// Remove drops the line whose product id matches. Absent ids are a no-op.
func (s *CartService) Remove(ctx context.Context, userID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)

	items := s.carts[userID]
	for i := range items {
		if items[i].Product.ID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			s.persist(ctx, userID, s.carts[userID])
			return
		}
	}
}

// Items returns the user's cart lines in insertion order.
func (s *CartService) Items(ctx context.Context, userID string) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)
	return append([]domain.CartItem(nil), s.carts[userID]...)
}

// Total returns the sum of price times quantity over all lines; zero for an
// empty cart.
func (s *CartService) Total(ctx context.Context, userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate(ctx, userID)

	var total float64
	for _, item := range s.carts[userID] {
		total += item.Subtotal()
	}
	return total
}

// Clear empties the user's cart. Called by checkout.
func (s *CartService) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	s.hydrated[userID] = true
	if s.store != nil {
		if err := s.store.Delete(ctx, userID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("cart delete failed")
		}
	}
}

// hydrate loads the persisted cart on first access. Caller holds the lock.
func (s *CartService) hydrate(ctx context.Context, userID string) {
	if s.store == nil || s.hydrated[userID] {
		return
	}
	s.hydrated[userID] = true

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cart read failed")
		return
	}
	if len(items) > 0 {
		s.carts[userID] = items
	}
}

// persist mirrors the cart to the store, best effort. Caller holds the lock.
func (s *CartService) persist(ctx context.Context, userID string, items []domain.CartItem) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, userID, items); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cart write failed")
	}
}
