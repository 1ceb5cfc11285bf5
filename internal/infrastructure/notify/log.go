package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// LogGateway writes notifications to the structured log. It never fails and
// is the default when no transport is configured.
type LogGateway struct {
	log zerolog.Logger
}

func NewLogGateway(log zerolog.Logger) *LogGateway {
	return &LogGateway{log: log}
}

func (g *LogGateway) Name() string { return DriverLog }

func (g *LogGateway) Send(_ context.Context, n domain.Notification) error {
	g.log.Info().
		Str("notification_id", n.ID).
		Str("order_id", n.OrderID).
		Str("product", n.ProductName).
		Str("recipient", n.Recipient).
		Str("address", n.Address).
		Int("quantity", n.Quantity).
		Float64("price", n.Price).
		Msg(n.Subject())
	return nil
}
