package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// ProductService fronts the external catalog. Reads are served from a local
// snapshot held by a CatalogView; mutations are gated by the authorization
// evaluator and refresh the snapshot on success.
type ProductService struct {
	catalog ports.CatalogClient
	authz   ports.Authorizer
	view    *CatalogView
	log     zerolog.Logger

	mu     sync.Mutex // guards loaded and snapshot refreshes
	loaded bool
}

func NewProductService(catalog ports.CatalogClient, authz ports.Authorizer, log zerolog.Logger) *ProductService {
	return &ProductService{
		catalog: catalog,
		authz:   authz,
		view:    NewCatalogView(),
		log:     log,
	}
}

// Refresh re-fetches the full product collection and rebuilds the view
// source. On failure the previous snapshot is kept.
func (s *ProductService) Refresh(ctx context.Context) error {
	products, err := s.catalog.List(ctx)
	if err != nil {
		metrics.CatalogRefreshesTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("refresh catalog: %w", err)
	}

	s.mu.Lock()
	s.view.SetProducts(products)
	s.loaded = true
	s.mu.Unlock()

	metrics.CatalogRefreshesTotal.WithLabelValues("success").Inc()
	s.log.Info().Int("products", len(products)).Msg("catalog snapshot refreshed")
	return nil
}

// ListProducts applies the filter criteria to the catalog snapshot.
func (s *ProductService) ListProducts(ctx context.Context, in ports.ListProductsInput) ([]domain.Product, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.view.Apply(in.Category, in.Query), nil
}

// ListCategories returns the distinct categories of the snapshot with the
// synthetic "all" entry prepended.
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.view.Categories(), nil
}

// GetProduct fetches a single product from the collaborator.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.catalog.Get(ctx, id)
}

// CreateProduct creates a product upstream. Requires the create permission.
func (s *ProductService) CreateProduct(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if !s.authz.CanPerformAction(ctx, domain.ActionCreate) {
		return nil, domain.ErrForbidden
	}

	created, err := s.catalog.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.refreshAfterMutation(ctx)
	s.log.Info().Int("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

// UpdateProduct replaces a product upstream. Requires the update permission.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, in ports.ProductInput) (*domain.Product, error) {
	if !s.authz.CanPerformAction(ctx, domain.ActionUpdate) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.catalog.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.refreshAfterMutation(ctx)
	s.log.Info().Int("product_id", id).Msg("product updated")
	return updated, nil
}

// DeleteProduct removes a product upstream. Requires the delete permission.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if !s.authz.CanPerformAction(ctx, domain.ActionDelete) {
		return domain.ErrForbidden
	}

	if err := s.catalog.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.refreshAfterMutation(ctx)
	s.log.Info().Int("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// refreshAfterMutation keeps the snapshot in step with upstream writes.
// A failed refresh keeps serving the previous snapshot.
func (s *ProductService) refreshAfterMutation(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("snapshot refresh after mutation failed")
	}
}
