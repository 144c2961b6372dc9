package usecase

import (
	"context"
	"fmt"
	"strings"

	"ikraph-email-agent/internal/mail"
	"ikraph-email-agent/internal/mail/transport"
	"ikraph-email-agent/internal/router"
	"ikraph-email-agent/pkg/llmprovider"
)

// Deliver rewrites input.Content with the email model and sends it.
func (uc *implUseCase) Deliver(ctx context.Context, input mail.DeliverInput) (mail.DeliverOutput, error) {
	to := strings.TrimSpace(input.To)
	if to == "" {
		return mail.DeliverOutput{}, mail.ErrNoRecipient
	}
	if !router.IsValidEmail(to) {
		return mail.DeliverOutput{}, mail.ErrInvalidRecipient
	}
	if uc.sender == nil {
		return mail.DeliverOutput{}, mail.ErrTransportDisabled
	}

	subject := input.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	tone := input.Tone
	if tone == "" {
		tone = uc.tone
	}

	body, err := uc.rewrite(ctx, subject, input.Content, tone)
	if err != nil {
		return mail.DeliverOutput{}, err
	}

	if err := uc.sender.Send(ctx, transport.Message{
		From:    uc.from,
		To:      to,
		Subject: subject,
		Body:    body,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: %s delivery to %s failed: %v", LogPrefixDeliver, uc.sender.Name(), to, err)
		return mail.DeliverOutput{Body: body, Transport: uc.sender.Name()}, fmt.Errorf("%s: send failed: %w", LogPrefixDeliver, err)
	}

	uc.l.Infof(ctx, "%s: email sent to %s via %s", LogPrefixDeliver, to, uc.sender.Name())
	return mail.DeliverOutput{Body: body, Transport: uc.sender.Name()}, nil
}

// rewrite polishes content into an email body. An empty model answer yields FallbackBody.
func (uc *implUseCase) rewrite(ctx context.Context, subject, content, tone string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Prompt: fmt.Sprintf(PromptRewrite, tone, subject, content),
	})
	if err != nil {
		return "", fmt.Errorf("%s: rewrite failed: %w", LogPrefixDeliver, err)
	}

	body := strings.TrimSpace(resp.Text)
	if body == "" {
		uc.l.Warnf(ctx, "%s: model returned an empty body", LogPrefixDeliver)
		return FallbackBody, nil
	}
	return body, nil
}
