package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/pkg/models"
)

func TestBlockService_UpsertBlock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewBlockService(f.client)
	decision := f.createDecision(t, 2)
	toolExec := f.createToolExecution(t, decision.ID)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			AgentExecutionID: f.execID,
			PlanDecisionID:   decision.ID,
		})
		assert.True(t, IsValidationError(err), "completion_id required")

		_, err = svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
		})
		assert.True(t, IsValidationError(err), "one owner id required")

		_, err = svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
			PlanDecisionID:   decision.ID,
			ToolExecutionID:  toolExec.ID,
		})
		assert.True(t, IsValidationError(err), "owner ids are mutually exclusive")
	})

	t.Run("new blocks take sequential block indexes", func(t *testing.T) {
		first, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
			PlanDecisionID:   decision.ID,
			Seq:              2,
			Status:           "in_progress",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, first.BlockIndex)

		second, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
			ToolExecutionID:  toolExec.ID,
			Seq:              4,
			Content:          "2 rows loaded",
			Status:           "success",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, second.BlockIndex)
	})

	t.Run("repeated upserts update in place", func(t *testing.T) {
		before, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
			PlanDecisionID:   decision.ID,
			Seq:              2,
			Content:          "partial text",
			Status:           "in_progress",
		})
		require.NoError(t, err)

		after, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
			CompletionID:     f.systemID,
			AgentExecutionID: f.execID,
			PlanDecisionID:   decision.ID,
			Seq:              2,
			Content:          "final text",
			Reasoning:        "because",
			Status:           "success",
		})
		require.NoError(t, err)

		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.BlockIndex, after.BlockIndex)
		assert.Equal(t, "final text", after.Content)
		assert.Equal(t, "because", after.Reasoning)
		assert.Equal(t, completionblock.StatusSuccess, after.Status)

		blocks, err := svc.ListBlocks(ctx, f.systemID)
		require.NoError(t, err)
		assert.Len(t, blocks, 2, "upserts never duplicate rows")
	})

	t.Run("blocks list in seq order", func(t *testing.T) {
		blocks, err := svc.ListBlocks(ctx, f.systemID)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, 2, blocks[0].Seq)
		assert.Equal(t, 4, blocks[1].Seq)
	})
}

func TestBlockService_RebuildTranscript(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewBlockService(f.client)
	decision := f.createDecision(t, 2)
	toolExec := f.createToolExecution(t, decision.ID)

	_, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     f.systemID,
		AgentExecutionID: f.execID,
		PlanDecisionID:   decision.ID,
		Seq:              2,
		Content:          "Looking at revenue.",
		Status:           "success",
	})
	require.NoError(t, err)
	_, err = svc.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     f.systemID,
		AgentExecutionID: f.execID,
		ToolExecutionID:  toolExec.ID,
		Seq:              3,
		Content:          "",
		Status:           "success",
	})
	require.NoError(t, err)

	content, err := svc.RebuildTranscript(ctx, f.systemID)
	require.NoError(t, err)
	assert.Equal(t, "Looking at revenue.", content, "empty blocks are skipped")

	c, err := NewCompletionService(f.client).GetCompletion(ctx, f.systemID)
	require.NoError(t, err)
	assert.Equal(t, "Looking at revenue.", c.Completion["content"])

	again, err := svc.RebuildTranscript(ctx, f.systemID)
	require.NoError(t, err)
	assert.Equal(t, content, again)
}

func TestBlockService_CloseOpenBlocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewBlockService(f.client)
	decision := f.createDecision(t, 2)
	toolExec := f.createToolExecution(t, decision.ID)

	_, err := svc.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     f.systemID,
		AgentExecutionID: f.execID,
		PlanDecisionID:   decision.ID,
		Seq:              2,
		Status:           "in_progress",
	})
	require.NoError(t, err)
	_, err = svc.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     f.systemID,
		AgentExecutionID: f.execID,
		ToolExecutionID:  toolExec.ID,
		Seq:              3,
		Status:           "success",
	})
	require.NoError(t, err)

	n, err := svc.CloseOpenBlocks(ctx, f.execID, "stopped", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only in_progress blocks transition")

	blocks, err := svc.ListBlocks(ctx, f.systemID)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, completionblock.StatusStopped, blocks[0].Status)
	assert.Equal(t, completionblock.StatusSuccess, blocks[1].Status)
}
