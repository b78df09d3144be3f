package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/services"
)

// nearLimitThreshold marks prompts consuming this share of the model window.
const nearLimitThreshold = 0.8

// EstimateTokens handles POST /api/v2/tokens/estimate. Builds the would-be
// planner prompt for the request and reports its token footprint.
func (s *Server) EstimateTokens(c *gin.Context) {
	var req models.CreateCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReportID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_id is required"})
		return
	}

	model := req.Prompt.ModelID
	if model == "" {
		model = s.cfg.Planner.DefaultModel
	}
	mentions := make([]contexthub.Mention, 0, len(req.Prompt.Mentions))
	for _, m := range req.Prompt.Mentions {
		mentions = append(mentions, contexthub.Mention{Kind: m.Kind, ID: m.ID, Label: m.Label})
	}

	hub := contexthub.New(services.NewContextStore(s.db.Client), s.runtime.Counter, contexthub.Params{
		ReportID:        req.ReportID,
		UserID:          req.UserID,
		Query:           req.Prompt.Content,
		ModelID:         model,
		Mentions:        mentions,
		MaxInstructions: s.cfg.Context.MaxInstructionsInContext,
		ObservationsMax: s.cfg.Context.ObservationsMax,
		SampleTables:    s.cfg.Context.SchemaSampleTables,
		IndexLimit:      s.cfg.Context.SchemaIndexLimit,
	})
	ctx := c.Request.Context()
	hub.PrimeStatic(ctx)
	hub.RefreshWarm(ctx)

	counter := s.runtime.Counter
	prompt := contexthub.RenderPrompt(hub.View()) + "\n\n" + req.Prompt.Content
	promptTokens := counter.Count(prompt, model)

	resp := models.TokenEstimateResponse{PromptTokens: promptTokens}
	if limit := counter.ModelLimit(model); limit > 0 {
		remaining, _ := counter.Remaining(promptTokens, model)
		usage := float64(promptTokens) / float64(limit)
		resp.ModelLimit = limit
		resp.RemainingTokens = remaining
		resp.NearLimit = usage >= nearLimitThreshold
		resp.ContextUsagePct = usage * 100
	}
	c.JSON(http.StatusOK, resp)
}
