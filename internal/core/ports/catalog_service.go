package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// CreateProductInput carries the fields of a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       *float64
	Image       string
	BuyNowLink  string
	Category    string
}

type CatalogService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
	// ListByCategory treats "" and domain.CategoryAll as no filter.
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
}
