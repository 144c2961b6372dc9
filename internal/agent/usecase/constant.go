package usecase

// Log prefixes
const (
	LogPrefixAsk   = "internal.agent.Ask"
	LogPrefixRoute = "internal.agent.Route"
)

// MessageNoRecipient is reported when the user asked for an email but gave no usable address.
const MessageNoRecipient = "No recipient email detected."

// Pipeline step labels used in metrics
const (
	stepRoute     = "route"
	stepKnowledge = "knowledge"
	stepEmail     = "email"
)

const metricsNamespace = "ikraph_agent"
