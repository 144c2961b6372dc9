package gmail

import (
	"context"

	"ikraph-email-agent/internal/mail/transport"
	pkgGmail "ikraph-email-agent/pkg/gmail"
	pkgLog "ikraph-email-agent/pkg/log"
)

// Name is the transport name reported for Gmail API deliveries.
const Name = "gmail"

// client is the subset of *pkgGmail.Client used here.
type client interface {
	Send(ctx context.Context, msg pkgGmail.Message) (string, error)
}

type implSender struct {
	client client
	l      pkgLog.Logger
}

// New creates a Gmail API backed Sender.
func New(c *pkgGmail.Client, l pkgLog.Logger) transport.Sender {
	return &implSender{client: c, l: l}
}

func (s *implSender) Send(ctx context.Context, msg transport.Message) error {
	id, err := s.client.Send(ctx, pkgGmail.Message{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return err
	}
	s.l.Infof(ctx, "gmail transport: message %s sent to %s", id, msg.To)
	return nil
}

func (s *implSender) Name() string {
	return Name
}
