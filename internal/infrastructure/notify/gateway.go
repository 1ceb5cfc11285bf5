// Package notify holds the transports that deliver order notifications.
package notify

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/ports"
)

const (
	DriverLog      = "log"
	DriverSMTP     = "smtp"
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
)

// Options selects and configures a gateway.
type Options struct {
	Driver        string
	SMTP          SMTPConfig
	KafkaBrokers  []string
	KafkaTopic    string
	RabbitMQURL   string
	RabbitMQQueue string
}

// New builds the gateway named by opts.Driver. The returned closer is never
// nil; call it on shutdown.
func New(opts Options, log zerolog.Logger) (ports.NotificationGateway, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverLog:
		return NewLogGateway(log), nopCloser{}, nil
	case DriverSMTP:
		g, err := NewSMTPGateway(opts.SMTP)
		if err != nil {
			return nil, nil, err
		}
		return g, nopCloser{}, nil
	case DriverKafka:
		g, err := NewKafkaGateway(opts.KafkaBrokers, opts.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	case DriverRabbitMQ:
		g, err := NewRabbitMQGateway(opts.RabbitMQURL, opts.RabbitMQQueue)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	default:
		return nil, nil, fmt.Errorf("unknown notification driver %q", opts.Driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
