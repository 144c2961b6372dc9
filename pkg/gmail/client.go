package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/wneessen/go-mail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// SendScope is the only scope the agent needs
const SendScope = gmailapi.GmailSendScope

// NewClientFromCredentialsFile creates a Gmail client from a credentials JSON file.
// Service-account credentials impersonate sender (domain-wide delegation).
// OAuth Desktop credentials need a token.json produced by scripts/gmail-auth.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath, sender string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(data, SendScope)
	if err == nil {
		jwtConfig.Subject = sender
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	// Fallback: OAuth2 installed app credentials
	oauthConfig, oauthErr := google.ConfigFromJSON(data, SendScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", oauthErr)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gmail-auth first", tokenPath)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Send delivers msg through users.messages.send as the authenticated user.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	raw, err := EncodeRaw(msg)
	if err != nil {
		return "", err
	}

	sent, err := c.service.Users.Messages.Send("me", &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send gmail message: %w", err)
	}
	return sent.Id, nil
}

// EncodeRaw renders msg as RFC 822 and encodes it as base64url, the format of Message.Raw.
func EncodeRaw(msg Message) (string, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return "", fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to render message: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}
