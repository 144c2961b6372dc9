package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"

	// LogRawOutputMaxRunes caps how much unparsable model output is logged.
	LogRawOutputMaxRunes = 200
)

// Router prompts
const (
	PromptRouterSystem = `You are an intent router for a medical chatbot pipeline.

Given a user message, produce ONLY valid JSON matching this schema:


{
  "intent": "send_email" | "answer_only",
  "medical_question": "string",
  "email": {
    "to": null | "string",
    "subject": null | "string"
  }
}

Rules:
1) intent="send_email" if the user asks to send/email the answer OR includes any email address.
2) medical_question MUST contain only the user question part without email sending phrases. For example, in "What is aspirin? please send the answer to Sam@gmail.com", the medical_question is "What is aspirin?".

3) If intent="answer_only", set email fields to null.
4) If intent="send_email":
   - "to" must be recipient email string.
   - "subject" should be short and relevant and can be inferred if missing.
Return JSON only. No markdown. No extra text.`

	PromptUserMessagePrefix = "\n\nUser message:\n"
)

// Router configuration
const (
	RouterTemperature = 0.01
)

// Subject derivation
const (
	DefaultSubject    = "Medical information"
	SubjectSuffix     = " information"
	SubjectMaxLength  = 45
	SubjectTruncateAt = 42
	SubjectEllipsis   = "..."
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse classifier output, falling back to deterministic routing"
)
