package router

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// space matches one or more Unicode whitespace or separator runes.
const space = `[\s\p{Z}]+`

// sendInstructionPatterns strip a trailing send/email instruction, from the
// first match to the end of the text. Order matters.
var sendInstructionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)\bplease` + space + `send.*$`),
	regexp.MustCompile(`(?is)\bsend` + space + `(the` + space + `)?answer.*$`),
	regexp.MustCompile(`(?is)\bemail` + space + `(the` + space + `)?answer.*$`),
	regexp.MustCompile(`(?is)\bsend` + space + `it` + space + `to.*$`),
	regexp.MustCompile(`(?is)\bto` + space + emailPattern + `.*$`),
}

// NormalizeQuestion removes email-sending instructions from a user message and
// keeps only the text up to and including the first '?'.
// The result is stable: NormalizeQuestion(NormalizeQuestion(x)) == NormalizeQuestion(x).
func NormalizeQuestion(question string) string {
	q := strings.TrimSpace(question)
	if q == "" {
		return ""
	}

	for _, re := range sendInstructionPatterns {
		q = strings.TrimSpace(re.ReplaceAllString(q, ""))
	}

	if idx := strings.IndexByte(q, '?'); idx >= 0 {
		q = strings.TrimSpace(q[:idx]) + "?"
	}

	return q
}

// GuessSubject derives an email subject from a question.
func GuessSubject(question string) string {
	q := strings.TrimSpace(question)
	if q == "" {
		return DefaultSubject
	}

	q = strings.TrimRight(q, "?")
	if utf8.RuneCountInString(q) > SubjectMaxLength {
		q = strings.TrimRightFunc(string([]rune(q)[:SubjectTruncateAt]), unicode.IsSpace) + SubjectEllipsis
	}

	return q + SubjectSuffix
}
