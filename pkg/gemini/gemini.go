package gemini

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"
)

// newGeminiImpl creates the genai client for either backend.
func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	clientCfg := &genai.ClientConfig{
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	if cfg.UseVertex() {
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = cfg.Project
		clientCfg.Location = cfg.Location
		if cfg.CredentialsPath != "" {
			creds, err := credentials.DetectDefault(&credentials.DetectOptions{
				Scopes:          []string{cloudPlatformScope},
				CredentialsFile: cfg.CredentialsPath,
			})
			if err != nil {
				return nil, fmt.Errorf("gemini: failed to load credentials %q: %w", cfg.CredentialsPath, err)
			}
			clientCfg.Credentials = creds
		}
	} else {
		clientCfg.Backend = genai.BackendGeminiAPI
		clientCfg.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &geminiImpl{client: client, model: cfg.Model}, nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// GenerateContent sends a generation request to Gemini
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, buildGenerateConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content failed: %w", err)
	}

	return transformResponse(resp), nil
}

// buildGenerateConfig maps a Request onto genai's generation config. Nil when nothing is set.
func buildGenerateConfig(req *Request) *genai.GenerateContentConfig {
	if req.SystemInstruction == "" && req.Temperature <= 0 && req.MaxTokens <= 0 && !req.JSONMode {
		return nil
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

func transformResponse(resp *genai.GenerateContentResponse) *Response {
	if resp == nil {
		return &Response{}
	}

	out := &Response{Text: strings.TrimSpace(resp.Text())}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out
}
