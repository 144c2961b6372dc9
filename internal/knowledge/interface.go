package knowledge

import "context"

// UseCase defines the business logic interface for the knowledge domain.
type UseCase interface {
	// Query turns a medical question into Cypher, runs it against the iKraph graph and summarizes the paths.
	Query(ctx context.Context, input QueryInput) (QueryOutput, error)
}
