package router

import (
	"encoding/json"
	"strings"
)

// decision is the loosely typed classifier output before normalization.
type decision map[string]any

// parseDecision decodes the model output as a JSON object, first strictly and
// then from the first '{' to the last '}'. Valid JSON that is not an object is
// treated as unparseable.
func parseDecision(raw string) (decision, bool) {
	s := strings.TrimSpace(raw)
	if d, ok := decodeObject(s); ok {
		return d, true
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start != -1 && end > start {
		return decodeObject(s[start : end+1])
	}

	return nil, false
}

func decodeObject(s string) (decision, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// fallbackDecision routes without the model: an address anywhere in the raw
// text means the user wants the answer emailed.
func fallbackDecision(raw string) decision {
	d := decision{
		"intent":           string(IntentAnswerOnly),
		"medical_question": NormalizeQuestion(raw),
		"email":            map[string]any{"to": nil, "subject": nil},
	}
	if to, ok := ExtractEmail(raw); ok {
		d["intent"] = string(IntentSendEmail)
		d["email"] = map[string]any{"to": to, "subject": nil}
	}
	return d
}

// stringField returns m[key] when it is a string. Missing, null and
// non-string values read as "".
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
