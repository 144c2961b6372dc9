package knowledge

import "errors"

// Domain-specific errors for the knowledge package.
var (
	ErrEmptyQuestion = errors.New("medical question is empty")
	ErrEmptyCypher   = errors.New("model returned no cypher query")
)
