package repository

import (
	"context"

	"ikraph-email-agent/internal/model"
)

// GraphRepository is the interface for knowledge-graph data access.
type GraphRepository interface {
	// RunCypher executes a read-only query and converts each row into a PathRecord.
	RunCypher(ctx context.Context, cypher string) ([]model.PathRecord, error)
}
