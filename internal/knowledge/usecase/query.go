package usecase

import (
	"context"
	"fmt"
	"strings"

	"ikraph-email-agent/internal/knowledge"
	"ikraph-email-agent/pkg/llmprovider"
)

// Query converts the question into Cypher, runs it and summarizes the records.
func (uc *implUseCase) Query(ctx context.Context, input knowledge.QueryInput) (knowledge.QueryOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return knowledge.QueryOutput{}, knowledge.ErrEmptyQuestion
	}

	// 1. Question -> Cypher
	cypherResp, err := uc.cypherLLM.GenerateContent(ctx, &llmprovider.Request{
		Prompt: fmt.Sprintf(PromptCypher, question),
	})
	if err != nil {
		return knowledge.QueryOutput{}, fmt.Errorf("%s: cypher generation failed: %w", LogPrefixQuery, err)
	}

	cypher := cleanCypher(cypherResp.Text)
	if cypher == "" {
		uc.l.Warnf(ctx, "%s: model returned no cypher for %q", LogPrefixQuery, question)
		return knowledge.QueryOutput{}, knowledge.ErrEmptyCypher
	}
	uc.l.Debugf(ctx, "%s: generated cypher:\n%s", LogPrefixQuery, cypher)

	// 2. Run on Neo4j
	records, err := uc.repo.RunCypher(ctx, cypher)
	if err != nil {
		return knowledge.QueryOutput{Cypher: cypher}, fmt.Errorf("%s: %w", LogPrefixQuery, err)
	}
	uc.l.Infof(ctx, "%s: retrieved %d records from iKraph", LogPrefixQuery, len(records))

	// 3. Records -> answer
	resultsJSON, err := renderRecords(records)
	if err != nil {
		return knowledge.QueryOutput{Cypher: cypher, Records: records}, fmt.Errorf("%s: failed to render records: %w", LogPrefixQuery, err)
	}

	summaryResp, err := uc.summaryLLM.GenerateContent(ctx, &llmprovider.Request{
		Prompt: fmt.Sprintf(PromptSummary, question, resultsJSON),
	})
	if err != nil {
		return knowledge.QueryOutput{Cypher: cypher, Records: records}, fmt.Errorf("%s: summarization failed: %w", LogPrefixQuery, err)
	}

	return knowledge.QueryOutput{
		Cypher:  cypher,
		Records: records,
		Answer:  strings.TrimSpace(summaryResp.Text),
	}, nil
}
