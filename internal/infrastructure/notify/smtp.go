package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// SMTPConfig holds the mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// SMTPGateway mails a plain-text order summary to the configured recipients.
type SMTPGateway struct {
	cfg SMTPConfig
}

func NewSMTPGateway(cfg SMTPConfig) (*SMTPGateway, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" || len(cfg.To) == 0 {
		return nil, errors.New("smtp sender and recipients are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPGateway{cfg: cfg}, nil
}

func (g *SMTPGateway) Name() string { return DriverSMTP }

func (g *SMTPGateway) Send(ctx context.Context, n domain.Notification) error {
	msg := mail.NewMsg()
	if err := msg.From(g.cfg.From); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(g.cfg.To...); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(n.Subject())
	msg.SetBodyString(mail.TypeTextPlain, n.Body())

	client, err := mail.NewClient(g.cfg.Host, g.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (g *SMTPGateway) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(g.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if g.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(g.cfg.Username),
			mail.WithPassword(g.cfg.Password),
		)
	}
	return opts
}
