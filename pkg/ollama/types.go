package ollama

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL string
	Model   string
	// Timeout bounds the whole request. Zero means the caller's context is the only limit.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("ollama: invalid base URL %q: %w", c.BaseURL, err)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a single generate call.
type Request struct {
	Prompt      string
	System      string
	Temperature float64
	JSONMode    bool
}

// Response is the concatenated output of a streamed generate call.
type Response struct {
	Text            string
	Model           string
	PromptEvalCount int
	EvalCount       int
}

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	System  string           `json:"system,omitempty"`
	Stream  bool             `json:"stream"`
	Format  string           `json:"format,omitempty"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

// generateChunk is one NDJSON line of the streamed response.
type generateChunk struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	Error           string `json:"error,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}
