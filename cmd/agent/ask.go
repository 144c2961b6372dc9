package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/app"
)

var (
	askJSON  bool
	askPlain bool
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt...>",
	Short: "Answer a question and email the answer when the prompt asks for it",
	Long: `Routes the prompt, queries iKraph and summarizes the result.

Examples:
  agent ask "What is the application of Panadol?"
  agent ask "What is aspirin? Please send the answer to someone@example.com"
  agent ask --json "What is metformin used for?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the raw result as JSON")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print markdown without terminal rendering")
}

func runAsk(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Agent.Ask(ctx, agent.AskInput{Prompt: prompt})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if askJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		md := formatAskOutput(out)
		if askPlain || !isTerminal(w) {
			_, err = w.Write([]byte(md))
			return err
		}
		_, err = w.Write([]byte(renderMarkdown(md)))
		return err
	})
}
