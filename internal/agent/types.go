package agent

import (
	"ikraph-email-agent/internal/model"
	"ikraph-email-agent/internal/router"
)

// EmailStatus describes what happened to the email step of a run.
type EmailStatus string

const (
	EmailStatusSkipped     EmailStatus = "skipped"
	EmailStatusNoRecipient EmailStatus = "no_recipient"
	EmailStatusSent        EmailStatus = "sent"
	EmailStatusFailed      EmailStatus = "failed"
)

// AskInput is the input for a full agent run.
type AskInput struct {
	Prompt string
}

// AskOutput is the result of a full agent run.
type AskOutput struct {
	RunID   string              `json:"run_id"`
	Routing router.RouterOutput `json:"routing"`
	Cypher  string              `json:"cypher"`
	Records []model.PathRecord  `json:"records"`
	Answer  string              `json:"answer"`
	Email   EmailResult         `json:"email"`
}

// EmailResult reports the outcome of the email step.
// Body is empty unless an email was actually produced.
type EmailResult struct {
	Status    EmailStatus `json:"status"`
	Message   string      `json:"message,omitempty"`
	To        string      `json:"to,omitempty"`
	Subject   string      `json:"subject,omitempty"`
	Body      string      `json:"body,omitempty"`
	Transport string      `json:"transport,omitempty"`
}

// RouteInput is the input for routing without answering.
type RouteInput struct {
	Prompt string
}

// RouteOutput is the routing decision for one prompt.
type RouteOutput struct {
	RunID   string              `json:"run_id"`
	Routing router.RouterOutput `json:"routing"`
}
