package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/agentexecution"
)

func TestExecutionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewExecutionService(f.client)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateExecution(ctx, "", f.reportID)
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateExecution(ctx, f.systemID, "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("one execution per completion", func(t *testing.T) {
		_, err := svc.CreateExecution(ctx, f.systemID, f.reportID)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lookup by completion", func(t *testing.T) {
		exec, err := svc.GetByCompletion(ctx, f.systemID)
		require.NoError(t, err)
		assert.Equal(t, f.execID, exec.ID)
		assert.Equal(t, agentexecution.StatusInProgress, exec.Status)

		_, err = svc.GetByCompletion(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("finalize records loop accounting", func(t *testing.T) {
		require.NoError(t, svc.FinalizeExecution(ctx, f.execID, agentexecution.StatusSuccess, 14, 3, ""))

		exec, err := svc.GetExecution(ctx, f.execID)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusSuccess, exec.Status)
		assert.Equal(t, 14, exec.LastSeq)
		assert.Equal(t, 3, exec.LoopIterations)
		require.NotNil(t, exec.DurationMs)
		assert.GreaterOrEqual(t, *exec.DurationMs, 0)
		require.NotNil(t, exec.CompletedAt)
		assert.False(t, exec.CompletedAt.IsZero())
	})

	t.Run("finalize with error message", func(t *testing.T) {
		pair := newFixture(t)
		execSvc := NewExecutionService(pair.client)
		require.NoError(t, execSvc.FinalizeExecution(ctx, pair.execID, agentexecution.StatusError, 2, 1, "planner stream failed"))

		exec, err := execSvc.GetExecution(ctx, pair.execID)
		require.NoError(t, err)
		assert.Equal(t, agentexecution.StatusError, exec.Status)
		require.NotNil(t, exec.ErrorMessage)
		assert.Equal(t, "planner stream failed", *exec.ErrorMessage)
	})

	t.Run("finalize unknown execution", func(t *testing.T) {
		err := svc.FinalizeExecution(ctx, "missing", agentexecution.StatusSuccess, 0, 0, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
