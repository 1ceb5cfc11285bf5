package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
	"github.com/stockroom/inventory-api/internal/pkg/metrics"
)

const (
	defaultWorkers     = 4
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
	defaultSendTimeout = 10 * time.Second
	channelBuffer      = 256
)

// RetrierConfig tunes a Retrier. Zero values fall back to defaults.
type RetrierConfig struct {
	Workers     int
	MaxAttempts int
	Backoff     time.Duration
	SendTimeout time.Duration
}

// Retrier redelivers notifications whose first send failed. Items are routed
// to a fixed set of workers by hashing the order id, so notifications for one
// order are retried in the order they were enqueued.
type Retrier struct {
	workers     []chan domain.Notification
	gateway     ports.NotificationGateway
	maxAttempts int
	backoff     time.Duration
	sendTimeout time.Duration
	log         zerolog.Logger
}

func NewRetrier(gateway ports.NotificationGateway, cfg RetrierConfig, log zerolog.Logger) *Retrier {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}

	r := &Retrier{
		workers:     make([]chan domain.Notification, cfg.Workers),
		gateway:     gateway,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.Backoff,
		sendTimeout: cfg.SendTimeout,
		log:         log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return r
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled;
// anything still queued at that point is dropped.
func (r *Retrier) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Enqueue hands n to its worker without blocking. It returns false when that
// worker's buffer is full and the notification was dropped.
func (r *Retrier) Enqueue(n domain.Notification) bool {
	idx := r.shardIndex(n.OrderID)
	select {
	case r.workers[idx] <- n:
		metrics.NotificationRetryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return true
	default:
		metrics.NotificationRetriesTotal.WithLabelValues("dropped").Inc()
		r.log.Warn().Str("order_id", n.OrderID).Int("worker_id", idx).Msg("retry queue full, notification dropped")
		return false
	}
}

func (r *Retrier) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32() % uint32(len(r.workers)))
}

func (r *Retrier) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	depth := metrics.NotificationRetryQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			r.deliver(ctx, id, n)
		}
	}
}

// deliver retries n with linear backoff: attempt k waits k*backoff first.
func (r *Retrier) deliver(ctx context.Context, workerID int, n domain.Notification) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * r.backoff):
		}

		sendCtx, cancel := context.WithTimeout(ctx, r.sendTimeout)
		err := r.gateway.Send(sendCtx, n)
		cancel()
		if err == nil {
			metrics.NotificationRetriesTotal.WithLabelValues("delivered").Inc()
			metrics.NotificationsTotal.WithLabelValues(r.gateway.Name(), "sent").Inc()
			r.log.Info().Str("order_id", n.OrderID).Int("attempt", attempt).Msg("notification redelivered")
			return
		}

		metrics.NotificationsTotal.WithLabelValues(r.gateway.Name(), "failed").Inc()
		r.log.Warn().Err(err).
			Str("order_id", n.OrderID).
			Int("worker_id", workerID).
			Int("attempt", attempt).
			Msg("notification retry failed")
	}

	metrics.NotificationRetriesTotal.WithLabelValues("exhausted").Inc()
	r.log.Error().Str("order_id", n.OrderID).Int("attempts", r.maxAttempts).Msg("notification abandoned")
}
