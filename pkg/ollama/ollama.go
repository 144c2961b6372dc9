package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newOllamaImpl creates a new Ollama implementation
func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

// Generate posts to /api/generate with streaming enabled and concatenates every
// "response" fragment until the server reports done.
func (o *ollamaImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	payload := generateRequest{
		Model:  o.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: true,
	}
	if req.JSONMode {
		payload.Format = "json"
	}
	if req.Temperature > 0 {
		payload.Options = &generateOptions{Temperature: req.Temperature}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &ClientError{Type: ErrTypeNotRunning, Message: "server is not reachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrModelNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ClientError{
			Type:    ErrTypeHTTPStatus,
			Message: fmt.Sprintf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	return o.readStream(resp.Body)
}

// readStream consumes the NDJSON body.
func (o *ollamaImpl) readStream(r io.Reader) (*Response, error) {
	var (
		out  strings.Builder
		last generateChunk
	)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read stream", Cause: err}
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var chunk generateChunk
			if jsonErr := json.Unmarshal(line, &chunk); jsonErr != nil {
				return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode stream chunk", Cause: jsonErr}
			}
			if chunk.Error != "" {
				return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: chunk.Error}
			}
			out.WriteString(chunk.Response)
			last = chunk
			if chunk.Done {
				break
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !last.Done {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "stream ended before done"}
	}

	model := last.Model
	if model == "" {
		model = o.model
	}

	return &Response{
		Text:            strings.TrimSpace(out.String()),
		Model:           model,
		PromptEvalCount: last.PromptEvalCount,
		EvalCount:       last.EvalCount,
	}, nil
}
