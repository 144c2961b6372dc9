package neo4j

import (
	"context"
	"fmt"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"ikraph-email-agent/internal/model"
)

// Result columns produced by the generated queries.
const (
	columnPath            = "path"
	columnPMIDs           = "r.pmids"
	columnPubmedCitations = "r.pubmedCitations"
)

// RunCypher executes cypher in a read-only session.
func (r *implRepository) RunCypher(ctx context.Context, cypher string) ([]model.PathRecord, error) {
	records, err := r.client.Read(ctx, cypher, nil)
	if err != nil {
		r.l.Errorf(ctx, "neo4j repository: query failed: %v", err)
		return nil, fmt.Errorf("failed to run cypher: %w", err)
	}

	out := make([]model.PathRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toPathRecord(rec))
	}

	r.l.Infof(ctx, "neo4j repository: retrieved %d records", len(out))
	return out, nil
}

// toPathRecord converts a driver record. A row without a path contributes
// empty node and relationship lists.
func toPathRecord(rec *neo4jdriver.Record) model.PathRecord {
	out := model.PathRecord{
		Nodes:         []model.GraphNode{},
		Relationships: []model.GraphRelationship{},
	}

	if v, ok := rec.Get(columnPath); ok {
		if path, ok := v.(neo4jdriver.Path); ok {
			for _, n := range path.Nodes {
				out.Nodes = append(out.Nodes, toGraphNode(n))
			}
			for _, rel := range path.Relationships {
				out.Relationships = append(out.Relationships, toGraphRelationship(rel))
			}
		}
	}

	out.PMIDs, _ = rec.Get(columnPMIDs)
	out.PubmedCitations, _ = rec.Get(columnPubmedCitations)

	return out
}

func toGraphNode(n neo4jdriver.Node) model.GraphNode {
	labels := n.Labels
	if labels == nil {
		labels = []string{}
	}
	return model.GraphNode{
		ID:         n.ElementId,
		Labels:     labels,
		Properties: propsOrEmpty(n.Props),
	}
}

func toGraphRelationship(rel neo4jdriver.Relationship) model.GraphRelationship {
	return model.GraphRelationship{
		Type:       rel.Type,
		Start:      rel.StartElementId,
		End:        rel.EndElementId,
		Properties: propsOrEmpty(rel.Props),
	}
}

func propsOrEmpty(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	return props
}
