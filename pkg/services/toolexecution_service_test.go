package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/toolexecution"
	"github.com/datalens-ai/datalens/pkg/models"
)

func TestToolExecutionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewToolExecutionService(f.client)
	decision := f.createDecision(t, 2)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateExecution(ctx, models.CreateToolExecutionRequest{
			AgentExecutionID: f.execID,
			ToolName:         "create_data",
		})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateExecution(ctx, models.CreateToolExecutionRequest{
			PlanDecisionID:   decision.ID,
			AgentExecutionID: f.execID,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("create starts running", func(t *testing.T) {
		exec, err := svc.CreateExecution(ctx, models.CreateToolExecutionRequest{
			PlanDecisionID:   decision.ID,
			AgentExecutionID: f.execID,
			ToolName:         "create_data",
			Arguments:        map[string]interface{}{"query": "revenue by month"},
			AttemptNumber:    1,
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusRunning, exec.Status)
		assert.Equal(t, "revenue by month", exec.Arguments["query"])
		assert.Equal(t, 1, exec.AttemptNumber)
		assert.False(t, exec.StartedAt.IsZero())
	})

	t.Run("finalize success with artifact handles", func(t *testing.T) {
		created, err := svc.CreateExecution(ctx, models.CreateToolExecutionRequest{
			PlanDecisionID:   decision.ID,
			AgentExecutionID: f.execID,
			ToolName:         "create_widget",
			AttemptNumber:    1,
		})
		require.NoError(t, err)

		exec, err := svc.FinalizeExecution(ctx, created.ID, models.FinalizeToolExecutionRequest{
			Status:                  "success",
			Result:                  map[string]interface{}{"rows": float64(2)},
			ResultSummary:           "widget built",
			DurationMs:              125,
			CreatedWidgetID:         "widget-1",
			CreatedStepID:           "step-1",
			CreatedVisualizationIDs: []string{"viz-1"},
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusSuccess, exec.Status)
		assert.Equal(t, "widget built", exec.ResultSummary)
		assert.EqualValues(t, 2, exec.Result["rows"])
		require.NotNil(t, exec.DurationMs)
		assert.Equal(t, 125, *exec.DurationMs)
		require.NotNil(t, exec.CreatedWidgetID)
		assert.Equal(t, "widget-1", *exec.CreatedWidgetID)
		require.NotNil(t, exec.CreatedStepID)
		assert.Equal(t, "step-1", *exec.CreatedStepID)
		assert.Equal(t, []string{"viz-1"}, exec.CreatedVisualizationIds)
		require.NotNil(t, exec.CompletedAt)
	})

	t.Run("finalize error keeps the message", func(t *testing.T) {
		created, err := svc.CreateExecution(ctx, models.CreateToolExecutionRequest{
			PlanDecisionID:   decision.ID,
			AgentExecutionID: f.execID,
			ToolName:         "create_data",
			AttemptNumber:    2,
		})
		require.NoError(t, err)

		exec, err := svc.FinalizeExecution(ctx, created.ID, models.FinalizeToolExecutionRequest{
			Status:        "error",
			ResultSummary: "warehouse unreachable",
			ErrorMessage:  "warehouse unreachable",
			DurationMs:    40,
		})
		require.NoError(t, err)
		assert.Equal(t, toolexecution.StatusError, exec.Status)
		require.NotNil(t, exec.ErrorMessage)
		assert.Equal(t, "warehouse unreachable", *exec.ErrorMessage)
	})

	t.Run("finalize unknown execution", func(t *testing.T) {
		_, err := svc.FinalizeExecution(ctx, "missing", models.FinalizeToolExecutionRequest{Status: "success"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list in start order", func(t *testing.T) {
		rows, err := svc.ListExecutions(ctx, f.execID)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})
}
