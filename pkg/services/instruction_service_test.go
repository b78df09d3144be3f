package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/pkg/models"
)

func TestInstructionService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewInstructionService(f.client)

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateInstruction(ctx, models.CreateInstructionRequest{Text: "x"})
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateInstruction(ctx, models.CreateInstructionRequest{ReportID: f.reportID})
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateInstruction(ctx, models.CreateInstructionRequest{
			ReportID: f.reportID,
			Text:     "x",
			LoadMode: "sometimes",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("defaults to intelligent load mode", func(t *testing.T) {
		inst, err := svc.CreateInstruction(ctx, models.CreateInstructionRequest{
			ReportID: f.reportID,
			Text:     "prefer bar charts",
			Category: "visuals",
			AISource: "completion",
		})
		require.NoError(t, err)
		assert.Equal(t, instruction.LoadModeIntelligent, inst.LoadMode)
		assert.Equal(t, "visuals", inst.Category)
	})

	t.Run("explicit load modes", func(t *testing.T) {
		always, err := svc.CreateInstruction(ctx, models.CreateInstructionRequest{
			ReportID: f.reportID,
			Text:     "currency is EUR",
			LoadMode: "always",
			Position: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, instruction.LoadModeAlways, always.LoadMode)
	})

	t.Run("usage recording increments counters", func(t *testing.T) {
		rows, err := svc.ListInstructions(ctx, f.reportID)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		require.NoError(t, svc.RecordUsage(ctx, []string{rows[0].ID}))
		require.NoError(t, svc.RecordUsage(ctx, []string{rows[0].ID}))
		require.NoError(t, svc.RecordUsage(ctx, nil))

		rows, err = svc.ListInstructions(ctx, f.reportID)
		require.NoError(t, err)
		var used, untouched int
		for _, r := range rows {
			if r.UsageCount > 0 {
				used = r.UsageCount
			} else {
				untouched++
			}
		}
		assert.Equal(t, 2, used)
		assert.Equal(t, 1, untouched)
	})
}
