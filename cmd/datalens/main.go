// DataLens orchestrator server — exposes the completions HTTP API and runs
// the per-turn agent loop against PostgreSQL and the configured LLM backend.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/datalens-ai/datalens/pkg/agent"
	"github.com/datalens-ai/datalens/pkg/api"
	"github.com/datalens-ai/datalens/pkg/config"
	"github.com/datalens-ai/datalens/pkg/database"
	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/tokens"
	"github.com/datalens-ai/datalens/pkg/tools"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg := config.Load()
	slog.Info("Starting DataLens", "http_port", cfg.HTTPPort)

	ctx := context.Background()

	// 1. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Stop watcher (dedicated pgx connection for LISTEN)
	stopWatcher := events.NewStopWatcher(dbConfig.DSN())
	if err := stopWatcher.Start(ctx); err != nil {
		slog.Error("Failed to start stop watcher", "error", err)
		os.Exit(1)
	}
	defer stopWatcher.Stop(ctx)

	// 3. LLM client
	llmClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"))

	// 4. Tool registry and runner. Deployments register their tool executors
	// here before the first turn runs.
	registry := tools.NewRegistry()
	runner := tools.NewRunner(registry,
		tools.RetryPolicy{
			MaxAttempts: cfg.Tools.MaxAttempts,
			Backoff:     cfg.Tools.BackoffBase,
			Multiplier:  cfg.Tools.BackoffMultiplier,
			Jitter:      cfg.Tools.BackoffJitter,
		},
		tools.TimeoutPolicy{
			Start: cfg.Tools.StartTimeout,
			Idle:  cfg.Tools.IdleTimeout,
			Hard:  cfg.Tools.HardTimeout,
		},
	)

	// 5. Agent runtime
	taskGroup := agent.NewTaskGroup()
	runtime := &agent.Runtime{
		Loop:     cfg.Loop,
		Planner:  cfg.Planner,
		Context:  cfg.Context,
		LLM:      llmClient,
		Registry: registry,
		Runner:   runner,
		Counter:  tokens.NewCounter(),
		Sessions: agent.NewServiceSessionFactory(dbClient.Client),
		Watcher:  stopWatcher,
		Tasks:    taskGroup,
	}
	slog.Info("Agent runtime initialized")

	// 6. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, runtime)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop accepting requests, then wait for detached
	// background tasks (scoring, titles, snapshots) to finish.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		taskGroup.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Background tasks finished")
	case <-time.After(30 * time.Second):
		slog.Warn("Background task shutdown timeout exceeded")
	}

	slog.Info("Shutdown complete")
}
