package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// RabbitMQGateway publishes notifications to a durable queue. A dropped
// connection or channel is redialed on the next Send.
type RabbitMQGateway struct {
	mu      sync.Mutex
	url     string
	queue   string
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  chan *amqp.Error
}

func NewRabbitMQGateway(url, queue string) (*RabbitMQGateway, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(queue) == "" {
		return nil, errors.New("rabbitmq queue is required")
	}

	g := &RabbitMQGateway{url: url, queue: queue}
	if err := g.connect(); err != nil {
		return nil, err
	}
	return g, nil
}

// connect dials, opens a channel and declares the queue. Callers hold mu
// or own g exclusively.
func (g *RabbitMQGateway) connect() error {
	conn, err := amqp.Dial(g.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(g.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("rabbitmq declare %s: %w", g.queue, err)
	}

	g.conn = conn
	g.channel = ch
	g.closed = conn.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

// healthy reports whether the current connection and channel can publish.
func (g *RabbitMQGateway) healthy() bool {
	if g.conn == nil || g.channel == nil {
		return false
	}
	select {
	case <-g.closed:
		return false
	default:
	}
	return !g.conn.IsClosed() && !g.channel.IsClosed()
}

func (g *RabbitMQGateway) reset() {
	if g.channel != nil {
		_ = g.channel.Close()
	}
	if g.conn != nil {
		_ = g.conn.Close()
	}
	g.channel = nil
	g.conn = nil
	g.closed = nil
}

func (g *RabbitMQGateway) Name() string { return DriverRabbitMQ }

func (g *RabbitMQGateway) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.healthy() {
		g.reset()
		if err := g.connect(); err != nil {
			return err
		}
	}

	return g.channel.PublishWithContext(ctx, "", g.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.ID,
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"order_id": n.OrderID},
		Body:         body,
	})
}

// Close closes the underlying channel and connection.
func (g *RabbitMQGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var err error
	if g.channel != nil {
		_ = g.channel.Close()
	}
	if g.conn != nil {
		err = g.conn.Close()
	}
	g.channel = nil
	g.conn = nil
	g.closed = nil
	return err
}
