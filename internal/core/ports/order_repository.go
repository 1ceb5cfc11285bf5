package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// OrderRepository is append-only: orders are never updated or deleted.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns every order in insertion order.
	List(ctx context.Context) ([]*domain.Order, error)
}
