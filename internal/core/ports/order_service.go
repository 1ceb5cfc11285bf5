package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// PlaceOrderInput is the DTO passed from the transport layer to OrderService.
// Price is a pointer so that an explicit 0 can be told apart from a missing value.
type PlaceOrderInput struct {
	ProductID      string
	Name           string
	Address        string
	Quantity       int
	Price          *float64
	Image          string
	IdempotencyKey string
}

// NotificationStatus reports what happened to the order notification.
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped"
)

// PlaceOrderResult is returned whenever the order was persisted.
type PlaceOrderResult struct {
	Order        *domain.Order
	Notification NotificationStatus
	// Replayed is true when the Idempotency-Key matched an existing order.
	Replayed bool
}

type OrderService interface {
	// PlaceOrder returns a non-nil result whenever the order was stored, even when
	// it also returns an error (the referenced product could not be found).
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
