package openaicompat

import "time"

const (
	// DefaultBaseURL is the DeepSeek endpoint, the most common OpenAI-compatible target here
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default chat model
	DefaultModel = "deepseek-chat"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)

// Well-known OpenAI-compatible endpoints
const (
	QwenBaseURL   = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"
)
