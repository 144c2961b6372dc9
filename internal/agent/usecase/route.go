package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/router"
	pkgLog "ikraph-email-agent/pkg/log"
)

// Route classifies the prompt without answering it.
func (uc *implUseCase) Route(ctx context.Context, input agent.RouteInput) (agent.RouteOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return agent.RouteOutput{}, agent.ErrEmptyPrompt
	}

	ctx, runID := uc.startRun(ctx)
	routing, err := uc.classify(ctx, input.Prompt)
	if err != nil {
		return agent.RouteOutput{RunID: runID}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	return agent.RouteOutput{RunID: runID, Routing: routing}, nil
}

// startRun assigns a run id, reusing a trace id already on the context.
func (uc *implUseCase) startRun(ctx context.Context) (context.Context, string) {
	if id := pkgLog.TraceIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return pkgLog.WithTraceID(ctx, id), id
}

func (uc *implUseCase) classify(ctx context.Context, prompt string) (router.RouterOutput, error) {
	start := time.Now()
	routing, err := uc.router.Classify(ctx, prompt)
	uc.metrics.observeStep(stepRoute, start, err)
	if err != nil {
		return router.RouterOutput{}, err
	}

	uc.metrics.recordRun(routing.Intent)
	uc.l.Infof(ctx, "routed prompt: intent=%s question=%q", routing.Intent, routing.MedicalQuestion)
	return routing, nil
}
