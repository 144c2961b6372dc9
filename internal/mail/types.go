package mail

// DeliverInput is the input for email delivery.
type DeliverInput struct {
	To      string
	Subject string
	Content string // Text to rewrite into the body
	Tone    string // Writing tone, defaults to the configured tone
}

// DeliverOutput is the result of a delivery.
type DeliverOutput struct {
	Body      string `json:"body"`
	Transport string `json:"transport"`
}
