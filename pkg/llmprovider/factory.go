package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ikraph-email-agent/config"
	"ikraph-email-agent/pkg/gemini"
	"ikraph-email-agent/pkg/ollama"
	"ikraph-email-agent/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig, keyed by provider name.
// Disabled providers are skipped. Unlike a fallback chain, every enabled provider
// may be bound to a step, so any initialization failure fails the whole call.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig) (map[string]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	providers := make(map[string]Provider)
	for _, p := range cfg.Providers {
		if !p.Enabled {
			continue
		}
		provider, err := createProvider(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", p.Name, err)
		}
		providers[p.Name] = provider
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	kind := strings.ToLower(cfg.Kind)
	if kind == "" {
		kind = strings.ToLower(cfg.Name)
	}

	switch kind {
	case KindOllama:
		client, err := ollama.New(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(cfg.Name, client), nil

	case KindGemini:
		gcfg := gemini.Config{
			APIKey:          cfg.APIKey,
			Model:           cfg.Model,
			Project:         cfg.Project,
			Location:        cfg.Location,
			CredentialsPath: cfg.CredentialsPath,
			BaseURL:         cfg.BaseURL,
		}
		if timeout > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := gemini.New(ctx, gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(cfg.Name, client), nil

	case KindOpenAI, KindDeepSeek, KindQwen:
		ocfg := openaicompat.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}
		if ocfg.BaseURL == "" {
			ocfg.BaseURL = defaultOpenAIBaseURL(kind)
		}
		if timeout > 0 {
			ocfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := openaicompat.New(ocfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", kind, err)
		}
		return NewOpenAIAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, cfg.Kind)
	}
}

func defaultOpenAIBaseURL(kind string) string {
	switch kind {
	case KindQwen:
		return openaicompat.QwenBaseURL
	case KindOpenAI:
		return openaicompat.OpenAIBaseURL
	default:
		return openaicompat.DefaultBaseURL
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	return d, nil
}
