// Package api exposes the orchestrator over HTTP: turn creation (JSON and
// SSE), token estimation, stop requests, and report reads.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/datalens-ai/datalens/pkg/agent"
	"github.com/datalens-ai/datalens/pkg/config"
	"github.com/datalens-ai/datalens/pkg/database"
	"github.com/datalens-ai/datalens/pkg/services"
)

// Server is the HTTP server over the agent runtime and domain services.
type Server struct {
	cfg     *config.Config
	db      *database.Client
	runtime *agent.Runtime

	reports     *services.ReportService
	completions *services.CompletionService
	executions  *services.ExecutionService
	blocks      *services.BlockService

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the API server and registers its routes.
func NewServer(cfg *config.Config, db *database.Client, runtime *agent.Runtime) *Server {
	s := &Server{
		cfg:         cfg,
		db:          db,
		runtime:     runtime,
		reports:     services.NewReportService(db.Client),
		completions: services.NewCompletionService(db.Client),
		executions:  services.NewExecutionService(db.Client),
		blocks:      services.NewBlockService(db.Client),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", s.Health)

	v2 := engine.Group("/api/v2")
	{
		v2.POST("/reports", s.CreateReport)
		v2.GET("/reports", s.ListReports)
		v2.GET("/reports/:id/completions", s.ListReportCompletions)

		v2.POST("/completions", s.CreateCompletion)
		v2.POST("/completions/stream", s.CreateCompletionStream)
		v2.POST("/completions/:id/stop", s.StopCompletion)

		v2.POST("/tokens/estimate", s.EstimateTokens)
	}

	s.engine = engine
	return s
}

// Start runs the HTTP server on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
