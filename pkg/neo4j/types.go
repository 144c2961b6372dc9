package neo4j

import (
	"errors"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds Neo4j connection configuration
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.URI == "" {
		c.URI = DefaultURI
	}
	if c.Username == "" {
		return errors.New("neo4j: Username is required")
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	return nil
}

type clientImpl struct {
	driver   neo4jdriver.DriverWithContext
	database string
}
