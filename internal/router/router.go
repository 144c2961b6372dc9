package router

import (
	"context"
	"fmt"
	"strings"

	"ikraph-email-agent/pkg/llmprovider"
)

// Classify determines user intent from message and returns a normalized decision.
// Provider failures are returned as errors; malformed model output never is.
func (r *SemanticRouter) Classify(ctx context.Context, message string) (RouterOutput, error) {
	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Prompt:      BuildPrompt(message),
		Temperature: RouterTemperature,
		JSONMode:    true,
	})
	if err != nil {
		return RouterOutput{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	d, ok := parseDecision(resp.Text)
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgJSONParseFailed, truncateForLog(resp.Text))
		d = fallbackDecision(message)
	}

	output := normalizeDecision(d, message)

	r.l.Infof(ctx, "%s: Classified as %s (recipient: %t)", LogPrefixClassify, output.Intent, output.Email.To != nil)
	return output, nil
}

// truncateForLog caps model output at LogRawOutputMaxRunes runes.
func truncateForLog(s string) string {
	r := []rune(s)
	if len(r) <= LogRawOutputMaxRunes {
		return s
	}
	return string(r[:LogRawOutputMaxRunes]) + "..."
}

// BuildPrompt renders the classifier prompt for a raw user message.
func BuildPrompt(message string) string {
	return PromptRouterSystem + PromptUserMessagePrefix + message + "\n"
}

// normalizeDecision turns a parsed or fallback decision into a RouterOutput.
// raw is the original user text, used to recover a recipient.
func normalizeDecision(d decision, raw string) RouterOutput {
	intent := Intent(stringField(d, "intent"))
	if !intent.Valid() {
		intent = IntentAnswerOnly
	}

	output := RouterOutput{
		Intent:          intent,
		MedicalQuestion: NormalizeQuestion(stringField(d, "medical_question")),
	}
	if intent == IntentAnswerOnly {
		return output
	}

	email, _ := d["email"].(map[string]any)

	to := strings.TrimSpace(stringField(email, "to"))
	if !IsValidEmail(to) {
		to, _ = ExtractEmail(raw)
	}
	if to != "" {
		output.Email.To = &to
	}

	subject := stringField(email, "subject")
	if subject == "" {
		subject = GuessSubject(output.MedicalQuestion)
	}
	output.Email.Subject = &subject

	return output
}
