package neo4j

import (
	"ikraph-email-agent/internal/knowledge/repository"
	pkgLog "ikraph-email-agent/pkg/log"
	pkgNeo4j "ikraph-email-agent/pkg/neo4j"
)

type implRepository struct {
	client pkgNeo4j.IClient
	l      pkgLog.Logger
}

// New creates a new Neo4j graph repository.
func New(client pkgNeo4j.IClient, l pkgLog.Logger) repository.GraphRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
