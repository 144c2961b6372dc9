package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ikraph-email-agent/config"
	_ "ikraph-email-agent/docs" // Swagger docs
	"ikraph-email-agent/internal/app"
	"ikraph-email-agent/internal/httpserver"
	"ikraph-email-agent/internal/middleware"
	"ikraph-email-agent/pkg/log"
)

// @title       iKraph Email Agent API
// @description Medical question answering over the iKraph knowledge graph with optional email delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting iKraph Email Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Neo4j URI: %s", cfg.Neo4j.URI)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. Agent
	a, err := app.New(ctx, cfg, logger, registry)
	if err != nil {
		logger.Error(ctx, "Failed to initialize agent: ", err)
		return
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Warnf(ctx, "Failed to close neo4j driver: %v", err)
		}
	}()

	if err := a.Graph.VerifyConnectivity(ctx); err != nil {
		logger.Warnf(ctx, "Neo4j is not reachable yet: %v", err)
	} else {
		logger.Info(ctx, "✅ Neo4j connected")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		Gatherer:    registry,
		ReadinessChecks: map[string]httpserver.ReadinessCheck{
			"neo4j": a.Graph.VerifyConnectivity,
		},
		AgentUseCase: a.Agent,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
