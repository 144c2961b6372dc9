package usecase

// Log prefixes
const (
	LogPrefixQuery = "internal.knowledge.Query"
)

// Prompts
const (
	PromptCypher = `You are an expert Neo4j Cypher generator for the iKraph medical knowledge graph.

Your job:
- Convert the user question into a valid Cypher query.
- Use UMLS node label: UMLS
- Use iKraph node label: iKraph
- Relationship mapping:
   (:UMLS)-[:iKraph2UMLS]-(:iKraph)
   (:iKraph)-[r]-(:iKraph)
- Return paths and citation info: r.pmids and r.pubmedCitations
- Limit results to 15.

IMPORTANT:
- Output ONLY Cypher query text.
- Do NOT explain anything.
- Do NOT use markdown.
- Assume user is asking about a medical concept in UMLS.

Example user question: "what is aspirin?"
Example Cypher:
MATCH path = (u:UMLS {CUI: "C0004057"})-[:iKraph2UMLS]-(i:iKraph)-[r]-(i2:iKraph)-[:iKraph2UMLS]-(u2:UMLS)
WHERE u <> u2
RETURN path, r.pmids, r.pubmedCitations
LIMIT 15

Now generate Cypher for this user question:
"%s"
`

	PromptSummary = `You are a medical assistant summarizing results from the iKraph knowledge graph.

User question: "%s"

You are given Neo4j graph query results in JSON format.
Explain the concept in natural language:
- Start with a short definition.
- Then list key gene/drug/disease relationships.
- Mention supporting citations if available.
- Use bullet points for readability.

Graph Results JSON:
%s

Now write the final answer for the user.
`
)
