package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestConfigValidate(t *testing.T) {
	t.Run("requires a key or project", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("api key defaults", func(t *testing.T) {
		cfg := Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.UseVertex() {
			t.Error("api key config must not use Vertex")
		}
	})

	t.Run("vertex defaults", func(t *testing.T) {
		cfg := Config{Project: "your_project"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Location != DefaultLocation {
			t.Errorf("expected default location, got %q", cfg.Location)
		}
		if !cfg.UseVertex() {
			t.Error("project-only config must use Vertex")
		}
	})
}

func TestBuildGenerateConfig(t *testing.T) {
	if cfg := buildGenerateConfig(&Request{Prompt: "hi"}); cfg != nil {
		t.Errorf("expected nil config for bare prompt, got %+v", cfg)
	}

	cfg := buildGenerateConfig(&Request{
		Prompt:            "hi",
		SystemInstruction: "rules",
		Temperature:       0.3,
		MaxTokens:         256,
		JSONMode:          true,
	})
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.3) {
		t.Errorf("unexpected temperature %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 256 {
		t.Errorf("unexpected max tokens %d", cfg.MaxOutputTokens)
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Errorf("unexpected mime type %q", cfg.ResponseMIMEType)
	}
	if cfg.SystemInstruction == nil || len(cfg.SystemInstruction.Parts) != 1 || cfg.SystemInstruction.Parts[0].Text != "rules" {
		t.Errorf("unexpected system instruction %+v", cfg.SystemInstruction)
	}
}

func TestTransformResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText("  Dear Sam,\nAspirin is...  ", genai.RoleModel)},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 30,
			TotalTokenCount:      42,
		},
	}

	out := transformResponse(resp)
	if out.Text != "Dear Sam,\nAspirin is..." {
		t.Errorf("unexpected text %q", out.Text)
	}
	if out.Usage.TotalTokens != 42 || out.Usage.InputTokens != 12 {
		t.Errorf("unexpected usage %+v", out.Usage)
	}

	if empty := transformResponse(nil); empty.Text != "" {
		t.Errorf("expected empty response, got %q", empty.Text)
	}
}
