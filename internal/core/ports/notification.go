package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// NotificationGateway delivers order notifications over some external transport.
type NotificationGateway interface {
	Send(ctx context.Context, n domain.Notification) error
	Name() string
}

// NotificationRetrier accepts notifications whose first delivery failed.
// Enqueue never blocks; it reports false when the item was dropped.
type NotificationRetrier interface {
	Enqueue(n domain.Notification) bool
}

// IdempotencyStore remembers which order a client-supplied key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (orderID string, found bool, err error)
	Remember(ctx context.Context, key, orderID string) error
}
