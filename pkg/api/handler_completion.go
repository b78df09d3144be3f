package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/pkg/agent"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/services"
)

// startedTurn bundles the rows and the running loop handle for one turn.
type startedTurn struct {
	pair *services.TurnPair
	exec *ent.AgentExecution
	turn *agent.Turn
}

// startTurn creates the completion pair and agent execution rows and
// prepares the loop. The caller decides how to run and consume it.
func (s *Server) startTurn(ctx context.Context, req models.CreateCompletionRequest) (*startedTurn, error) {
	pair, err := s.completions.CreateTurn(ctx, req)
	if err != nil {
		return nil, err
	}
	exec, err := s.executions.CreateExecution(ctx, pair.System.ID, req.ReportID)
	if err != nil {
		return nil, err
	}
	capabilities := req.Capabilities
	if len(capabilities) == 0 {
		capabilities = s.cfg.Tools.Capabilities
	}
	turn := agent.NewTurn(s.runtime, agent.TurnParams{
		ReportID:           req.ReportID,
		UserID:             req.UserID,
		UserCompletionID:   pair.User.ID,
		SystemCompletionID: pair.System.ID,
		AgentExecutionID:   exec.ID,
		Prompt:             req.Prompt,
		Capabilities:       capabilities,
	})
	return &startedTurn{pair: pair, exec: exec, turn: turn}, nil
}

// CreateCompletion handles POST /api/v2/completions. Runs the turn to
// completion and returns the finished pair assembled from blocks.
func (s *Server) CreateCompletion(c *gin.Context) {
	var req models.CreateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started, err := s.startTurn(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The turn runs on a background context: a dropped client must not
	// abort a half-written turn.
	go started.turn.Run(context.Background())

	stream := started.turn.Stream()
	for {
		select {
		case <-stream.Events():
		case <-stream.Done():
			stream.Drain()
			resp, err := s.assemblePair(c.Request.Context(), started.pair)
			if err != nil {
				respondServiceError(c, err)
				return
			}
			c.JSON(http.StatusOK, resp)
			return
		}
	}
}

// CreateCompletionStream handles POST /api/v2/completions/stream. Emits the
// turn's events as SSE frames and a terminal [DONE] frame. On client
// disconnect the turn keeps running to completion in the background.
func (s *Server) CreateCompletionStream(c *gin.Context) {
	var req models.CreateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started, err := s.startTurn(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	go started.turn.Run(context.Background())

	stream := started.turn.Stream()
	clientGone := c.Request.Context().Done()
	connected := true

	writeFrame := func(data []byte) {
		if !connected {
			return
		}
		if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", data); err != nil {
			connected = false
			return
		}
		c.Writer.Flush()
	}

	for {
		select {
		case ev := <-stream.Events():
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			writeFrame(data)
		case <-clientGone:
			// Keep draining so the loop never blocks on a full queue.
			connected = false
			clientGone = nil
		case <-stream.Done():
			for _, ev := range stream.Drain() {
				if data, err := json.Marshal(ev); err == nil {
					writeFrame(data)
				}
			}
			writeFrame([]byte("[DONE]"))
			return
		}
	}
}

// ListReportCompletions handles GET /api/v2/reports/:id/completions.
func (s *Server) ListReportCompletions(c *gin.Context) {
	reportID := c.Param("id")
	if _, err := s.reports.GetReport(c.Request.Context(), reportID); err != nil {
		respondServiceError(c, err)
		return
	}

	rows, err := s.completions.ListHistory(c.Request.Context(), reportID, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]*models.CompletionView, 0, len(rows))
	for _, row := range rows {
		view, err := s.completionView(c.Request.Context(), row)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		out = append(out, view)
	}
	c.JSON(http.StatusOK, gin.H{"completions": out})
}

// assemblePair reloads the finished pair with blocks.
func (s *Server) assemblePair(ctx context.Context, pair *services.TurnPair) (*models.CompletionsV2Response, error) {
	user, err := s.reloadView(ctx, pair.User.ID)
	if err != nil {
		return nil, err
	}
	system, err := s.reloadView(ctx, pair.System.ID)
	if err != nil {
		return nil, err
	}
	return &models.CompletionsV2Response{User: user, System: system}, nil
}

func (s *Server) reloadView(ctx context.Context, completionID string) (*models.CompletionView, error) {
	row, err := s.completions.GetCompletion(ctx, completionID)
	if err != nil {
		return nil, err
	}
	return s.completionView(ctx, row)
}

func (s *Server) completionView(ctx context.Context, row *ent.Completion) (*models.CompletionView, error) {
	blocks, err := s.blocks.ListBlocks(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return &models.CompletionView{
		Completion: row,
		Blocks:     services.BlockViews(blocks),
	}, nil
}
