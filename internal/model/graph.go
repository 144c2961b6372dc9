package model

// GraphNode is a node of a knowledge-graph path.
type GraphNode struct {
	ID         string         `json:"id"`
	Labels     []string       `json:"labels"`
	Properties map[string]any `json:"properties"`
}

// GraphRelationship is an edge of a knowledge-graph path.
type GraphRelationship struct {
	Type       string         `json:"type"`
	Start      string         `json:"start"`
	End        string         `json:"end"`
	Properties map[string]any `json:"properties"`
}

// PathRecord is one row returned by a knowledge-graph query: the matched path
// plus the citation columns of its relationship.
type PathRecord struct {
	Nodes           []GraphNode         `json:"nodes"`
	Relationships   []GraphRelationship `json:"relationships"`
	PMIDs           any                 `json:"pmids"`
	PubmedCitations any                 `json:"pubmedCitations"`
}
