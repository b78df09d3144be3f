package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/pkg/models"
)

func TestDecisionService_UpsertDecision(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewDecisionService(f.client)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{Seq: 1})
		assert.True(t, IsValidationError(err))

		_, err = svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
			AgentExecutionID: f.execID,
			Seq:              -1,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("same seq updates the existing row", func(t *testing.T) {
		skeleton, err := svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
			AgentExecutionID: f.execID,
			Seq:              2,
			LoopIndex:        0,
			PlanType:         "action",
		})
		require.NoError(t, err)
		assert.False(t, skeleton.Final)

		final, err := svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
			AgentExecutionID: f.execID,
			Seq:              2,
			LoopIndex:        0,
			PlanType:         "action",
			ReasoningMessage: "done thinking",
			AssistantMessage: "Here is the answer.",
			AnalysisComplete: true,
			FinalAnswer:      "Revenue grew 12%.",
			Final:            true,
		})
		require.NoError(t, err)

		assert.Equal(t, skeleton.ID, final.ID)
		assert.True(t, final.Final)
		assert.True(t, final.AnalysisComplete)
		assert.Equal(t, "Revenue grew 12%.", final.FinalAnswer)

		rows, err := svc.ListDecisions(ctx, f.execID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("a new seq creates a new row", func(t *testing.T) {
		_, err := svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
			AgentExecutionID: f.execID,
			Seq:              7,
			LoopIndex:        1,
			PlanType:         "research",
		})
		require.NoError(t, err)

		rows, err := svc.ListDecisions(ctx, f.execID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Seq)
		assert.Equal(t, 7, rows[1].Seq)
		assert.Equal(t, plandecision.PlanTypeResearch, rows[1].PlanType)
	})

	t.Run("action arguments round-trip", func(t *testing.T) {
		decision, err := svc.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
			AgentExecutionID: f.execID,
			Seq:              9,
			PlanType:         "action",
			ActionName:       "create_data",
			ActionArguments:  map[string]interface{}{"query": "revenue by month"},
		})
		require.NoError(t, err)
		assert.Equal(t, "create_data", decision.ActionName)
		assert.Equal(t, "revenue by month", decision.ActionArguments["query"])
	})
}
