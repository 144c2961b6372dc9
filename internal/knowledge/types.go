package knowledge

import "ikraph-email-agent/internal/model"

// QueryInput is the input for a knowledge-graph query.
type QueryInput struct {
	Question string
}

// QueryOutput is the result of a knowledge-graph query.
type QueryOutput struct {
	Cypher  string             `json:"cypher"`
	Records []model.PathRecord `json:"records"`
	Answer  string             `json:"answer"`
}
