package llmprovider

import (
	"context"
	"fmt"
	"time"

	"ikraph-email-agent/config"
	"ikraph-email-agent/pkg/log"
)

// Manager binds pipeline steps to configured providers.
// Each step gets exactly one provider; calls are single-attempt.
type Manager struct {
	steps  map[Step]Provider
	logger log.Logger
}

// NewManager creates a Manager from initialized providers and the step bindings in cfg
func NewManager(providers map[string]Provider, steps config.StepsConfig, logger log.Logger) (*Manager, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	bindings := map[Step]string{
		StepRouter:  steps.Router,
		StepCypher:  steps.Cypher,
		StepSummary: steps.Summary,
		StepEmail:   steps.Email,
	}

	m := &Manager{
		steps:  make(map[Step]Provider, len(bindings)),
		logger: logger,
	}
	for step, name := range bindings {
		p, ok := providers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %q", ErrUnknownStep, step, name)
		}
		m.steps[step] = &loggingProvider{step: step, next: p, logger: logger}
	}

	return m, nil
}

// For returns the provider bound to step
func (m *Manager) For(step Step) (Provider, error) {
	p, ok := m.steps[step]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}
	return p, nil
}

// MustFor returns the provider bound to step and panics when there is none.
// Only safe after NewManager succeeded, which binds every step.
func (m *Manager) MustFor(step Step) Provider {
	p, err := m.For(step)
	if err != nil {
		panic(err)
	}
	return p
}

// loggingProvider logs every call to the wrapped provider
type loggingProvider struct {
	step   Step
	next   Provider
	logger log.Logger
}

func (p *loggingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := p.next.GenerateContent(ctx, req)
	if err != nil {
		p.logFailure(ctx, time.Since(start), err)
		return nil, &ProviderError{Provider: p.next.Name(), Err: err}
	}
	p.logSuccess(ctx, time.Since(start), resp)
	return resp, nil
}

func (p *loggingProvider) Name() string {
	return p.next.Name()
}

func (p *loggingProvider) Model() string {
	return p.next.Model()
}

// logSuccess logs successful LLM generation with metrics
func (p *loggingProvider) logSuccess(ctx context.Context, elapsed time.Duration, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	p.logger.Infof(ctx, "LLM generation successful: step=%s provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		p.step, p.next.Name(), p.next.Model(), in, out, elapsed)
}

// logFailure logs failed LLM generation attempts
func (p *loggingProvider) logFailure(ctx context.Context, elapsed time.Duration, err error) {
	p.logger.Warnf(ctx, "LLM generation failed: step=%s provider=%s model=%s elapsed=%s error=%v",
		p.step, p.next.Name(), p.next.Model(), elapsed, err)
}
