package port

import (
	"context"

	"github.com/holafushion/storefront/internal/domain"
)

// CatalogService is the consumed contract of the product backend. The
// backend owns the records and assigns IDs; this client caches.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
