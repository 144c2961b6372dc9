package agent

import "context"

// UseCase defines the business logic interface for the agent domain.
type UseCase interface {
	// Ask routes the prompt, answers it from the knowledge graph and emails the answer when asked to.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	// Route only classifies the prompt.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
}
