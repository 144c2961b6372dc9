package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name as configured (e.g., "llama", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized single-turn LLM generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	JSONMode          bool
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Step names a stage of the agent pipeline that needs a model
type Step string

const (
	StepRouter  Step = "router"
	StepCypher  Step = "cypher"
	StepSummary Step = "summary"
	StepEmail   Step = "email"
)

// Provider kinds accepted in configuration
const (
	KindOllama   = "ollama"
	KindGemini   = "gemini"
	KindOpenAI   = "openai"
	KindDeepSeek = "deepseek"
	KindQwen     = "qwen"
)
