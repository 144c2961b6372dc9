package neo4j

import (
	"context"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// IClient defines the interface for the Neo4j client.
// Implementations are safe for concurrent use.
type IClient interface {
	// Read runs a query in a read-only session and returns every record.
	Read(ctx context.Context, cypher string, params map[string]any) ([]*neo4jdriver.Record, error)

	// VerifyConnectivity checks that the server is reachable with the configured credentials.
	VerifyConnectivity(ctx context.Context) error

	// Close releases the driver's connection pool.
	Close(ctx context.Context) error
}

// New creates a new Neo4j client. No connection is made until first use.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg)
}
