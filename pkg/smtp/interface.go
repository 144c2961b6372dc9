package smtp

import "context"

// ISMTP defines the interface for the SMTP client.
type ISMTP interface {
	// Send delivers a plain-text message over STARTTLS with PLAIN auth.
	Send(ctx context.Context, msg Message) error
}

// New creates a new SMTP client with the given configuration
func New(cfg Config) (ISMTP, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg)
}
