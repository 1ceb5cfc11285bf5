package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

func sampleNotification() domain.Notification {
	return domain.Notification{
		ID:           "n-1",
		OrderID:      "o-1",
		ProductName:  "Widget",
		ProductImage: "https://img/widget.png",
		Recipient:    "Bob",
		Address:      "1 Main St",
		Quantity:     2,
		Price:        19.5,
	}
}

func TestNew_DefaultsToLog(t *testing.T) {
	g, closer, err := New(Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name() != DriverLog {
		t.Fatalf("expected log driver, got %s", g.Name())
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	if _, _, err := New(Options{Driver: "pigeon"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestNew_IncompleteConfigs(t *testing.T) {
	cases := []Options{
		{Driver: DriverSMTP},
		{Driver: DriverSMTP, SMTP: SMTPConfig{Host: "mail"}},
		{Driver: DriverKafka},
		{Driver: DriverKafka, KafkaBrokers: []string{"localhost:9092"}},
		{Driver: DriverRabbitMQ},
	}
	for _, opts := range cases {
		if _, _, err := New(opts, zerolog.Nop()); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
	}
}

func TestNew_SMTPDefaultsPort(t *testing.T) {
	g, _, err := New(Options{Driver: "SMTP", SMTP: SMTPConfig{Host: "mail", From: "shop@x.com", To: []string{"ops@x.com"}}}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.(*SMTPGateway).cfg.Port != 587 {
		t.Fatalf("expected default port 587")
	}
}

func TestLogGateway_Send(t *testing.T) {
	var buf bytes.Buffer
	g := NewLogGateway(zerolog.New(&buf))

	if err := g.Send(context.Background(), sampleNotification()); err != nil {
		t.Fatalf("send: %v", err)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	if line["order_id"] != "o-1" || line["recipient"] != "Bob" {
		t.Fatalf("unexpected log line: %v", line)
	}
	if !strings.Contains(line["message"].(string), "Widget") {
		t.Fatalf("subject missing product name: %v", line["message"])
	}
}

func TestKafkaGateway_Name(t *testing.T) {
	g, err := NewKafkaGateway([]string{"localhost:9092"}, "orders.notifications")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer g.Close()
	if g.Name() != DriverKafka {
		t.Fatalf("unexpected name %s", g.Name())
	}
}
