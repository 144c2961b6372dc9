package mail

import "context"

// UseCase defines the business logic interface for the mail domain.
type UseCase interface {
	// Deliver rewrites content into an email body and sends it to the recipient.
	Deliver(ctx context.Context, input DeliverInput) (DeliverOutput, error)
}
