package gemini

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration.
// Either APIKey (Gemini API) or Project (Vertex AI) must be set.
type Config struct {
	APIKey string
	Model  string

	// Vertex AI
	Project         string
	Location        string
	CredentialsPath string

	// BaseURL overrides the API endpoint (tests, proxies)
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" && c.Project == "" {
		return errors.New("gemini: APIKey or Project is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Project != "" && c.Location == "" {
		c.Location = DefaultLocation
	}
	return nil
}

// UseVertex reports whether the config targets Vertex AI.
func (c Config) UseVertex() bool {
	return c.APIKey == "" && c.Project != ""
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	client *genai.Client
	model  string
}

// Request represents a Gemini generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	JSONMode          bool
}

// Response represents a Gemini generation response
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
