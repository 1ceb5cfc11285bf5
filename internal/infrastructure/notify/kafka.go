package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// KafkaGateway publishes notifications as JSON, keyed by order id so that all
// messages about one order land on the same partition.
type KafkaGateway struct {
	writer *kafkago.Writer
}

func NewKafkaGateway(brokers []string, topic string) (*KafkaGateway, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	return &KafkaGateway{writer: &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}}, nil
}

func (g *KafkaGateway) Name() string { return DriverKafka }

func (g *KafkaGateway) Send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	return g.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(n.OrderID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "notification-id", Value: []byte(n.ID)},
		},
	})
}

func (g *KafkaGateway) Close() error {
	return g.writer.Close()
}
