package router

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately loose: it accepts consecutive dots in the domain
// and rejects '+' in the local part and IP-literal domains. Word characters
// are Unicode letters and digits.
const emailPattern = `[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+`

var (
	emailSearchRe = regexp.MustCompile(emailPattern)
	emailExactRe  = regexp.MustCompile(`^(?:` + emailPattern + `)$`)
)

// IsValidEmail reports whether the trimmed s is exactly one email address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailExactRe.MatchString(s)
}

// ExtractEmail returns the first email-shaped token in text.
func ExtractEmail(text string) (string, bool) {
	m := emailSearchRe.FindString(text)
	return m, m != ""
}
