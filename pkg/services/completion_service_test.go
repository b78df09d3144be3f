package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/test/util"
)

func TestCompletionService_CreateTurn(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	reports := NewReportService(client)
	svc := NewCompletionService(client)

	report, err := reports.CreateReport(ctx, "", "org-1")
	require.NoError(t, err)

	t.Run("creates the user and system pair", func(t *testing.T) {
		pair, err := svc.CreateTurn(ctx, models.CreateCompletionRequest{
			ReportID: report.ID,
			Prompt:   models.Prompt{Content: "first question"},
		})
		require.NoError(t, err)

		assert.Equal(t, completion.RoleUser, pair.User.Role)
		assert.Equal(t, completion.StatusSuccess, pair.User.Status)
		assert.Equal(t, 0, pair.User.TurnIndex)
		assert.Equal(t, "first question", pair.User.Prompt["content"])

		assert.Equal(t, completion.RoleSystem, pair.System.Role)
		assert.Equal(t, completion.StatusInProgress, pair.System.Status)
		require.NotNil(t, pair.System.ParentID)
		assert.Equal(t, pair.User.ID, *pair.System.ParentID)
		assert.Equal(t, 0, pair.System.TurnIndex)
	})

	t.Run("turn index increments per user turn", func(t *testing.T) {
		pair, err := svc.CreateTurn(ctx, models.CreateCompletionRequest{
			ReportID: report.ID,
			Prompt:   models.Prompt{Content: "second question"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, pair.User.TurnIndex)
		assert.Equal(t, 1, pair.System.TurnIndex)
	})

	t.Run("rejects missing report", func(t *testing.T) {
		_, err := svc.CreateTurn(ctx, models.CreateCompletionRequest{
			Prompt: models.Prompt{Content: "hello"},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty prompt", func(t *testing.T) {
		_, err := svc.CreateTurn(ctx, models.CreateCompletionRequest{ReportID: report.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestCompletionService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCompletionService(f.client)

	require.NoError(t, svc.UpdateStatus(ctx, f.systemID, completion.StatusSuccess))

	t.Run("terminal status is not overwritten", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, f.systemID, completion.StatusStopped)
		assert.ErrorIs(t, err, ErrTerminal)

		c, err := svc.GetCompletion(ctx, f.systemID)
		require.NoError(t, err)
		assert.Equal(t, completion.StatusSuccess, c.Status)
	})

	t.Run("repeating the same terminal status is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.UpdateStatus(ctx, f.systemID, completion.StatusSuccess))
	})
}

func TestCompletionService_StopFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCompletionService(f.client)

	stopped, err := svc.IsStopRequested(ctx, f.systemID)
	require.NoError(t, err)
	assert.False(t, stopped)

	require.NoError(t, svc.RequestStop(ctx, f.systemID))

	stopped, err = svc.IsStopRequested(ctx, f.systemID)
	require.NoError(t, err)
	assert.True(t, stopped)

	t.Run("unknown completion", func(t *testing.T) {
		err := svc.RequestStop(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.IsStopRequested(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompletionService_IsFirstUserTurn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCompletionService(f.client)

	first, err := svc.IsFirstUserTurn(ctx, f.reportID)
	require.NoError(t, err)
	assert.True(t, first)

	_, err = svc.CreateTurn(ctx, models.CreateCompletionRequest{
		ReportID: f.reportID,
		Prompt:   models.Prompt{Content: "followup"},
	})
	require.NoError(t, err)

	first, err = svc.IsFirstUserTurn(ctx, f.reportID)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestCompletionService_UsageAndScores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCompletionService(f.client)

	require.NoError(t, svc.SetUsage(ctx, f.systemID, models.UsageSnapshot{
		PromptTokens:     120,
		CompletionTokens: 30,
		TotalTokens:      150,
	}))
	require.NoError(t, svc.SetJudgeScores(ctx, f.systemID, map[string]interface{}{
		"relevance": 0.9,
		"phase":     "judge_late",
	}))

	c, err := svc.GetCompletion(ctx, f.systemID)
	require.NoError(t, err)
	assert.EqualValues(t, 150, c.Usage["total_tokens"])
	assert.EqualValues(t, 0.9, c.JudgeScores["relevance"])
	assert.Equal(t, "judge_late", c.JudgeScores["phase"])
}

func TestCompletionService_ListHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewCompletionService(f.client)

	head, err := svc.CreateTurn(ctx, models.CreateCompletionRequest{
		ReportID: f.reportID,
		Prompt:   models.Prompt{Content: "current question"},
	})
	require.NoError(t, err)

	rows, err := svc.ListHistory(ctx, f.reportID, head.User.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the open head pair is excluded")
	assert.Equal(t, f.userID, rows[0].ID)
	assert.Equal(t, f.systemID, rows[1].ID)

	rows, err = svc.ListHistory(ctx, f.reportID, "")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
