package openaicompat

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

func newClientImpl(cfg Config) *clientImpl {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	oc.HTTPClient = cfg.HTTPClient

	return &clientImpl{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
	}
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

// ChatCompletion sends a request to {base}/chat/completions
func (c *clientImpl) ChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: API call failed: %w", err)
	}
	return c.transformResponse(&resp), nil
}

func (c *clientImpl) transformRequest(req *Request) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, 2),
	}
	if req.System != "" {
		out.Messages = append(out.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	out.Messages = append(out.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})
	if req.JSONMode {
		out.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	return out
}

func (c *clientImpl) transformResponse(resp *openai.ChatCompletionResponse) *Response {
	out := &Response{
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.Model == "" {
		out.Model = c.model
	}
	if len(resp.Choices) > 0 {
		out.Text = strings.TrimSpace(resp.Choices[0].Message.Content)
	}
	return out
}
