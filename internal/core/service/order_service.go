package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
	"github.com/stockroom/inventory-api/internal/pkg/metrics"
)

const defaultNotifyTimeout = 10 * time.Second

// OrderService runs the order pipeline: validate, persist, look up the product,
// notify. Persistence is authoritative; notification is best effort.
type OrderService struct {
	orders        ports.OrderRepository
	products      ports.ProductRepository
	gateway       ports.NotificationGateway
	retrier       ports.NotificationRetrier
	idempotency   ports.IdempotencyStore
	notifyTimeout time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// OrderOption customises an OrderService.
type OrderOption func(*OrderService)

// WithRetrier hands failed notifications to r for background redelivery.
func WithRetrier(r ports.NotificationRetrier) OrderOption {
	return func(s *OrderService) { s.retrier = r }
}

// WithIdempotency enables Idempotency-Key replay backed by store.
func WithIdempotency(store ports.IdempotencyStore) OrderOption {
	return func(s *OrderService) { s.idempotency = store }
}

// WithNotifyTimeout bounds each gateway call.
func WithNotifyTimeout(d time.Duration) OrderOption {
	return func(s *OrderService) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	gateway ports.NotificationGateway,
	logger zerolog.Logger,
	opts ...OrderOption,
) *OrderService {
	s := &OrderService{
		orders:        orders,
		products:      products,
		gateway:       gateway,
		notifyTimeout: defaultNotifyTimeout,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder persists the order before looking up its product. When the product
// is missing the stored order is returned together with an ErrInvalidInput /
// ErrProductNotFound error; a failed notification only degrades the result.
func (s *OrderService) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	if err := validateOrder(in); err != nil {
		return nil, err
	}

	if replay := s.replay(ctx, in.IdempotencyKey); replay != nil {
		return replay, nil
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		ProductID: strings.TrimSpace(in.ProductID),
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		Quantity:  in.Quantity,
		Price:     *in.Price,
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", in.ProductID).Msg("failed to persist order")
		return nil, fmt.Errorf("%w: place order: %w", domain.ErrStorage, err)
	}
	s.logger.Info().Str("order_id", order.ID).Str("product_id", order.ProductID).Msg("order placed")

	if in.IdempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Remember(ctx, in.IdempotencyKey, order.ID); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to store idempotency key")
		}
	}

	result := &ports.PlaceOrderResult{Order: order, Notification: ports.NotificationSkipped}

	product, err := s.products.FindByID(ctx, order.ProductID)
	if err != nil {
		metrics.OrdersPlacedTotal.WithLabelValues(string(ports.NotificationSkipped)).Inc()
		if errors.Is(err, domain.ErrProductNotFound) {
			s.logger.Warn().Str("order_id", order.ID).Str("product_id", order.ProductID).Msg("order references unknown product")
			return result, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrProductNotFound)
		}
		// The order is stored; a failing catalog lookup must not turn it into a 500.
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("product lookup failed, notification skipped")
		return result, nil
	}

	n := domain.NewOrderNotification(uuid.NewString(), order, product)
	if err := s.notify(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.ID).Str("driver", s.gateway.Name()).Msg("order notification failed")
		result.Notification = ports.NotificationFailed
		if s.retrier != nil && !s.retrier.Enqueue(n) {
			s.logger.Warn().Str("order_id", order.ID).Msg("notification retry queue full, dropping")
		}
	} else {
		result.Notification = ports.NotificationSent
	}

	metrics.OrdersPlacedTotal.WithLabelValues(string(result.Notification)).Inc()
	return result, nil
}

func (s *OrderService) notify(ctx context.Context, n domain.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()

	start := time.Now()
	err := s.gateway.Send(ctx, n)
	metrics.NotificationDuration.WithLabelValues(s.gateway.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(s.gateway.Name(), "failed").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues(s.gateway.Name(), "sent").Inc()
	return nil
}

// replay returns the order previously stored under key, or nil when the key is
// unknown or the store is unavailable.
func (s *OrderService) replay(ctx context.Context, key string) *ports.PlaceOrderResult {
	if key == "" || s.idempotency == nil {
		return nil
	}

	orderID, found, err := s.idempotency.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed, processing anyway")
		return nil
	}
	if !found {
		return nil
	}

	existing, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		s.logger.Warn().Err(err).Str("idempotency_key", key).Str("order_id", orderID).Msg("replayed order not found, processing anyway")
		return nil
	}

	metrics.OrdersReplayedTotal.Inc()
	s.logger.Info().Str("idempotency_key", key).Str("order_id", existing.ID).Msg("idempotent replay")
	return &ports.PlaceOrderResult{Order: existing, Notification: ports.NotificationSkipped, Replayed: true}
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func validateOrder(in ports.PlaceOrderInput) error {
	var missing []string
	if strings.TrimSpace(in.ProductID) == "" {
		missing = append(missing, "productId")
	}
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if in.Quantity == 0 {
		missing = append(missing, "quantity")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(in.Image) == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if *in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
