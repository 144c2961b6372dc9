package smtp

import (
	"errors"
	"time"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP client configuration
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Username == "" {
		return errors.New("smtp: Username is required")
	}
	if c.Password == "" {
		return errors.New("smtp: Password is required")
	}
	return nil
}

// Message is a plain-text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

type clientImpl struct {
	client *mail.Client
}
