package smtp

import (
	"context"

	"ikraph-email-agent/internal/mail/transport"
	pkgSMTP "ikraph-email-agent/pkg/smtp"
)

// Name is the transport name reported for SMTP deliveries.
const Name = "smtp"

type implSender struct {
	client pkgSMTP.ISMTP
}

// New creates an SMTP-backed Sender.
func New(client pkgSMTP.ISMTP) transport.Sender {
	return &implSender{client: client}
}

func (s *implSender) Send(ctx context.Context, msg transport.Message) error {
	return s.client.Send(ctx, pkgSMTP.Message{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
}

func (s *implSender) Name() string {
	return Name
}
