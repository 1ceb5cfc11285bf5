package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// List returns all products, or only those in category when it is non-empty.
	List(ctx context.Context, category string) ([]*domain.Product, error)
}
