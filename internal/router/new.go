package router

import (
	"context"

	"ikraph-email-agent/pkg/llmprovider"
	"ikraph-email-agent/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using an LLM, with deterministic fallback.
// It holds no mutable state and is safe for concurrent use.
type SemanticRouter struct {
	llm llmprovider.Provider
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm llmprovider.Provider, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
