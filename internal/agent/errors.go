package agent

import "errors"

// Domain-specific errors for the agent package.
var (
	ErrEmptyPrompt = errors.New("prompt is empty")
)
