package mail

import "errors"

// Domain-specific errors for the mail package.
var (
	ErrNoRecipient       = errors.New("no recipient email detected")
	ErrInvalidRecipient  = errors.New("recipient is not a valid email address")
	ErrTransportDisabled = errors.New("email transport is disabled")
)
