package router

// Intent represents the user's intention
type Intent string

const (
	IntentSendEmail  Intent = "send_email"
	IntentAnswerOnly Intent = "answer_only"
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	return i == IntentSendEmail || i == IntentAnswerOnly
}

// EmailBlock carries the optional delivery fields. Nil means absent.
type EmailBlock struct {
	To      *string `json:"to"`
	Subject *string `json:"subject"`
}

// RouterOutput is the normalized decision produced for one user message
type RouterOutput struct {
	Intent          Intent     `json:"intent"`
	MedicalQuestion string     `json:"medical_question"`
	Email           EmailBlock `json:"email"`
}

// Recipient returns the recipient address and whether one is set.
func (o RouterOutput) Recipient() (string, bool) {
	if o.Email.To == nil {
		return "", false
	}
	return *o.Email.To, true
}

// Subject returns the subject and whether one is set.
func (o RouterOutput) Subject() (string, bool) {
	if o.Email.Subject == nil {
		return "", false
	}
	return *o.Email.Subject, true
}
