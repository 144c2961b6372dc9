package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"ikraph-email-agent/config"
	"ikraph-email-agent/internal/agent"
	agentUC "ikraph-email-agent/internal/agent/usecase"
	knowledgeNeo4j "ikraph-email-agent/internal/knowledge/repository/neo4j"
	knowledgeUC "ikraph-email-agent/internal/knowledge/usecase"
	"ikraph-email-agent/internal/mail/transport"
	gmailTransport "ikraph-email-agent/internal/mail/transport/gmail"
	smtpTransport "ikraph-email-agent/internal/mail/transport/smtp"
	mailUC "ikraph-email-agent/internal/mail/usecase"
	"ikraph-email-agent/internal/router"
	pkgGmail "ikraph-email-agent/pkg/gmail"
	"ikraph-email-agent/pkg/llmprovider"
	"ikraph-email-agent/pkg/log"
	pkgNeo4j "ikraph-email-agent/pkg/neo4j"
	pkgSMTP "ikraph-email-agent/pkg/smtp"
)

// App is the fully wired agent shared by the API server and the CLI.
type App struct {
	Agent  agent.UseCase
	Router *router.SemanticRouter
	Graph  pkgNeo4j.IClient
}

// New builds every component from cfg. reg may be nil to disable metrics.
// Callers must Close the returned App.
func New(ctx context.Context, cfg *config.Config, l log.Logger, reg prometheus.Registerer) (*App, error) {
	// 1. LLM providers bound to pipeline steps
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("init llm providers: %w", err)
	}
	llm, err := llmprovider.NewManager(providers, cfg.LLM.Steps, l)
	if err != nil {
		return nil, fmt.Errorf("init llm manager: %w", err)
	}
	for _, step := range []llmprovider.Step{llmprovider.StepRouter, llmprovider.StepCypher, llmprovider.StepSummary, llmprovider.StepEmail} {
		p := llm.MustFor(step)
		l.Infof(ctx, "LLM step %s -> %s (%s)", step, p.Name(), p.Model())
	}

	// 2. Semantic router
	r := router.New(llm.MustFor(llmprovider.StepRouter), l)

	// 3. Knowledge graph
	graph, err := pkgNeo4j.New(pkgNeo4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("init neo4j: %w", err)
	}
	kn := knowledgeUC.New(l, llm.MustFor(llmprovider.StepCypher), llm.MustFor(llmprovider.StepSummary), knowledgeNeo4j.New(graph, l))

	// 4. Mail
	sender, err := newSender(ctx, cfg.Mail, l)
	if err != nil {
		_ = graph.Close(ctx)
		return nil, fmt.Errorf("init mail transport: %w", err)
	}
	m := mailUC.New(l, llm.MustFor(llmprovider.StepEmail), sender, cfg.Mail.Sender, cfg.Mail.Tone)

	// 5. Agent
	a, err := agentUC.New(l, r, kn, m, reg)
	if err != nil {
		_ = graph.Close(ctx)
		return nil, fmt.Errorf("init agent: %w", err)
	}

	return &App{Agent: a, Router: r, Graph: graph}, nil
}

// Close releases the graph driver.
func (a *App) Close(ctx context.Context) error {
	return a.Graph.Close(ctx)
}

// newSender returns nil for the "none" transport.
func newSender(ctx context.Context, cfg config.MailConfig, l log.Logger) (transport.Sender, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		client, err := pkgSMTP.New(pkgSMTP.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.Sender,
			Password: cfg.SMTP.Password,
		})
		if err != nil {
			return nil, err
		}
		l.Infof(ctx, "Mail transport: smtp via %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
		return smtpTransport.New(client), nil

	case config.MailTransportGmail:
		client, err := pkgGmail.NewClientFromCredentialsFile(ctx, cfg.Gmail.CredentialsPath, cfg.Gmail.TokenPath, cfg.Sender)
		if err != nil {
			l.Warn(ctx, "Run `go run scripts/gmail-auth/main.go` to generate token.json")
			return nil, err
		}
		l.Info(ctx, "Mail transport: gmail api")
		return gmailTransport.New(client, l), nil

	default:
		l.Warn(ctx, "Mail transport disabled, send_email requests will not be delivered")
		return nil, nil
	}
}
