package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/pkg/agent"
	"github.com/datalens-ai/datalens/pkg/config"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/services"
	"github.com/datalens-ai/datalens/pkg/tokens"
	"github.com/datalens-ai/datalens/pkg/tools"
	testdb "github.com/datalens-ai/datalens/test/database"
)

const exportDecisionJSON = `{"plan_type":"action","assistant_message":"Exporting now.",` +
	`"action":{"name":"export_data","arguments":{}},"analysis_complete":false}`

// newGatedServer builds a server whose registry holds one tool locked behind
// the "exports" capability. The scripted planner always asks for that tool.
func newGatedServer(t *testing.T, invoked *atomic.Bool) (*Server, string) {
	t.Helper()
	db := testdb.NewTestClient(t)

	registry := tools.NewRegistry()
	err := registry.Register(tools.Descriptor{
		Name:         "export_data",
		Description:  "Exports the requested table",
		PlanTypes:    []string{"action"},
		Capabilities: []string{"exports"},
	}, tools.ExecutorFunc(func(ctx context.Context, rt tools.Runtime, args map[string]interface{}, emit tools.EmitFunc) (*tools.Result, error) {
		invoked.Store(true)
		return &tools.Result{Observation: tools.Observation{
			Status:           "success",
			Summary:          "export written",
			AnalysisComplete: true,
			FinalAnswer:      "Export complete.",
		}}, nil
	}))
	require.NoError(t, err)

	cfg := config.Load()
	rt := &agent.Runtime{
		Loop:    cfg.Loop,
		Planner: cfg.Planner,
		Context: cfg.Context,
		LLM: &llm.StubClient{
			Scripts: [][]llm.Chunk{{&llm.TextChunk{Content: exportDecisionJSON}}},
		},
		Registry: registry,
		Runner: tools.NewRunner(registry,
			tools.RetryPolicy{MaxAttempts: 1, Backoff: time.Millisecond},
			tools.TimeoutPolicy{Start: 2 * time.Second, Idle: 2 * time.Second, Hard: 5 * time.Second}),
		Counter:  tokens.NewCounter(),
		Sessions: agent.NewServiceSessionFactory(db.Client),
		Tasks:    agent.NewTaskGroup(),
	}
	t.Cleanup(rt.Tasks.Wait)

	report, err := services.NewReportService(db.Client).CreateReport(context.Background(), "", "org-1")
	require.NoError(t, err)

	return NewServer(cfg, db, rt), report.ID
}

func postCompletion(t *testing.T, srv *Server, body models.CreateCompletionRequest) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v2/completions", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestCreateCompletion_CapabilityGatedTool(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request capabilities unlock the tool", func(t *testing.T) {
		var invoked atomic.Bool
		srv, reportID := newGatedServer(t, &invoked)

		w := postCompletion(t, srv, models.CreateCompletionRequest{
			ReportID:     reportID,
			Capabilities: []string{"exports"},
			Prompt:       models.Prompt{Content: "export the revenue table"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, invoked.Load(), "the gated tool should have executed")
		assert.Contains(t, w.Body.String(), "Export complete.")
	})

	t.Run("without the capability the tool never executes", func(t *testing.T) {
		var invoked atomic.Bool
		srv, reportID := newGatedServer(t, &invoked)

		w := postCompletion(t, srv, models.CreateCompletionRequest{
			ReportID: reportID,
			Prompt:   models.Prompt{Content: "export the revenue table"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, invoked.Load(), "a capability-gated tool must stay unreachable")
	})
}
