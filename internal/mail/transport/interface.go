package transport

import "context"

// Sender delivers a finished message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	// Name identifies the transport in logs and responses.
	Name() string
}

// Message is a plain-text email ready to send.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}
