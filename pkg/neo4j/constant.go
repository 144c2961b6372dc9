package neo4j

const (
	// DefaultURI is the default local bolt endpoint
	DefaultURI = "neo4j://localhost:7687"

	// DefaultDatabase is the default database name
	DefaultDatabase = "neo4j"
)
