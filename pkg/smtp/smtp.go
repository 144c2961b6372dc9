package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

func newClientImpl(cfg Config) (*clientImpl, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}
	return &clientImpl{client: client}, nil
}

// Send builds and delivers msg in a single connection.
func (c *clientImpl) Send(ctx context.Context, msg Message) error {
	m, err := BuildMsg(msg)
	if err != nil {
		return err
	}
	if err := c.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: failed to send message: %w", err)
	}
	return nil
}

// BuildMsg converts msg into a go-mail message with a text/plain body.
func BuildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
