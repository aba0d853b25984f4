package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Title       string
	Price       float64
	Description string
	Category    string
	Image       string
}

// CatalogClient is the external catalog collaborator. All operations map
// one-to-one onto the remote product API.
type CatalogClient interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

// ListProductsInput carries the view criteria for the product listing.
// Category filters by exact match ("" or "all" = no category filter);
// Query is a free-text search over title and description.
type ListProductsInput struct {
	Category string
	Query    string
}

// ProductService defines catalog use-cases. Mutations are gated by the
// caller's role; reads are open to everyone.
type ProductService interface {
	ListProducts(ctx context.Context, in ListProductsInput) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	Refresh(ctx context.Context) error
}
