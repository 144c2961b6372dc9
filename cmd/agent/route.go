package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/app"
)

var routeCmd = &cobra.Command{
	Use:   "route <prompt...>",
	Short: "Print the routing decision for a prompt as JSON",
	Long: `Classifies the prompt without querying the graph or sending email.

Example:
  agent route "What is the application of Panadol? Please send the answer to IAN123@gmail.com"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Agent.Route(ctx, agent.RouteInput{Prompt: prompt})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out.Routing)
	})
}
