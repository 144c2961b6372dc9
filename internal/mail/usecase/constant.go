package usecase

// Log prefixes
const (
	LogPrefixDeliver = "internal.mail.Deliver"
)

// Defaults
const (
	DefaultTone    = "professional"
	DefaultSubject = "No Subject"
	FallbackBody   = "No output returned from model."
)

// PromptRewrite asks the model to turn an answer into an email body.
// Arguments: tone, subject, content.
const PromptRewrite = `You are an assistant helping to rewrite email content.

Task:
- Rewrite the content into a %s email body.
- Keep the meaning and facts unchanged.
- Improve clarity, organization, and readability.
- Do NOT add new medical claims.
- Output email body only (no subject line).

Email Subject:
%s

Original Content:
%s`
