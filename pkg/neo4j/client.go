package neo4j

import (
	"context"
	"fmt"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func newClientImpl(cfg Config) (*clientImpl, error) {
	driver, err := neo4jdriver.NewDriverWithContext(cfg.URI, neo4jdriver.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to create driver: %w", err)
	}

	return &clientImpl{
		driver:   driver,
		database: cfg.Database,
	}, nil
}

// Read runs cypher in a read-only session and collects every record.
func (c *clientImpl) Read(ctx context.Context, cypher string, params map[string]any) ([]*neo4jdriver.Record, error) {
	session := c.driver.NewSession(ctx, neo4jdriver.SessionConfig{
		AccessMode:   neo4jdriver.AccessModeRead,
		DatabaseName: c.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to run query: %w", err)
	}

	var records []*neo4jdriver.Record
	for result.Next(ctx) {
		records = append(records, result.Record())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("neo4j: failed to read results: %w", err)
	}

	return records, nil
}

// VerifyConnectivity checks that the server is reachable
func (c *clientImpl) VerifyConnectivity(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("neo4j: connectivity check failed: %w", err)
	}
	return nil
}

// Close releases the driver
func (c *clientImpl) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
