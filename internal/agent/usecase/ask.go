package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/knowledge"
	"ikraph-email-agent/internal/mail"
	"ikraph-email-agent/internal/router"
)

// Ask runs the whole pipeline: route, query the graph, answer, then email when requested.
// A failed email does not fail the run; its outcome is reported in AskOutput.Email.
func (uc *implUseCase) Ask(ctx context.Context, input agent.AskInput) (agent.AskOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return agent.AskOutput{}, agent.ErrEmptyPrompt
	}

	ctx, runID := uc.startRun(ctx)
	out := agent.AskOutput{RunID: runID}

	// 1. Route
	routing, err := uc.classify(ctx, input.Prompt)
	if err != nil {
		return out, fmt.Errorf("%s: %w", LogPrefixAsk, err)
	}
	out.Routing = routing

	// 2. Answer from iKraph
	start := time.Now()
	result, err := uc.knowledge.Query(ctx, knowledge.QueryInput{Question: routing.MedicalQuestion})
	uc.metrics.observeStep(stepKnowledge, start, err)
	if err != nil {
		out.Cypher = result.Cypher
		return out, fmt.Errorf("%s: %w", LogPrefixAsk, err)
	}
	out.Cypher = result.Cypher
	out.Records = result.Records
	out.Answer = result.Answer

	// 3. Email
	out.Email = uc.email(ctx, routing, result.Answer)
	uc.metrics.recordEmail(out.Email.Status)

	return out, nil
}

func (uc *implUseCase) email(ctx context.Context, routing router.RouterOutput, answer string) agent.EmailResult {
	if routing.Intent != router.IntentSendEmail {
		return agent.EmailResult{Status: agent.EmailStatusSkipped}
	}

	to, ok := routing.Recipient()
	if !ok {
		uc.l.Warnf(ctx, "%s: send_email intent without a recipient", LogPrefixAsk)
		return agent.EmailResult{Status: agent.EmailStatusNoRecipient, Message: MessageNoRecipient}
	}
	subject, _ := routing.Subject()

	start := time.Now()
	delivered, err := uc.mail.Deliver(ctx, mail.DeliverInput{
		To:      to,
		Subject: subject,
		Content: answer,
	})
	uc.metrics.observeStep(stepEmail, start, err)

	res := agent.EmailResult{
		To:        to,
		Subject:   subject,
		Body:      delivered.Body,
		Transport: delivered.Transport,
	}
	if err != nil {
		if errors.Is(err, mail.ErrNoRecipient) || errors.Is(err, mail.ErrInvalidRecipient) {
			return agent.EmailResult{Status: agent.EmailStatusNoRecipient, Message: MessageNoRecipient}
		}
		uc.l.Errorf(ctx, "%s: email delivery failed: %v", LogPrefixAsk, err)
		res.Status = agent.EmailStatusFailed
		res.Message = err.Error()
		return res
	}

	res.Status = agent.EmailStatusSent
	return res
}
