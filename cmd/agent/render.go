package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"ikraph-email-agent/internal/agent"
)

// renderMarkdown renders markdown for terminal display, returning it unchanged on failure.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatAskOutput lays out one run as markdown: the answer, then the email outcome.
func formatAskOutput(out agent.AskOutput) string {
	var b strings.Builder

	b.WriteString("## Response\n\n")
	b.WriteString(strings.TrimSpace(out.Answer))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "_%d records from iKraph · run %s_\n\n", len(out.Records), out.RunID)

	b.WriteString("## Email\n\n")
	switch out.Email.Status {
	case agent.EmailStatusSkipped:
		b.WriteString("Not requested.\n")
	case agent.EmailStatusNoRecipient:
		b.WriteString(out.Email.Message + "\n")
	case agent.EmailStatusSent:
		fmt.Fprintf(&b, "Sent to **%s** via %s\n\n", out.Email.To, out.Email.Transport)
		fmt.Fprintf(&b, "**Subject:** %s\n\n", out.Email.Subject)
		b.WriteString(quote(out.Email.Body))
	case agent.EmailStatusFailed:
		fmt.Fprintf(&b, "Delivery to **%s** failed: %s\n", out.Email.To, out.Email.Message)
		if out.Email.Body != "" {
			b.WriteString("\n")
			b.WriteString(quote(out.Email.Body))
		}
	}

	return b.String()
}

func quote(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("> "+line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}
