package smtp

import "time"

const (
	// DefaultHost is Gmail's submission server
	DefaultHost = "smtp.gmail.com"

	// DefaultPort is the STARTTLS submission port
	DefaultPort = 587

	// DefaultTimeout bounds dial and the SMTP conversation
	DefaultTimeout = 30 * time.Second
)
