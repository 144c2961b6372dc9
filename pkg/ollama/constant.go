package ollama

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default model used when none is configured
	DefaultModel = "llama3.1:8b"

	generatePath = "/api/generate"
)
