package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/visualization"
	"github.com/datalens-ai/datalens/pkg/models"
)

func TestArtifactService_WidgetChain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewArtifactService(f.client)

	widget, err := svc.CreateWidget(ctx, models.CreateWidgetRequest{
		ReportID:     f.reportID,
		CompletionID: f.systemID,
		Title:        "Revenue by month",
	})
	require.NoError(t, err)

	query, err := svc.CreateQuery(ctx, models.CreateQueryRequest{
		ReportID: f.reportID,
		SQL:      "select month, sum(amount) from orders group by 1",
	})
	require.NoError(t, err)

	created, err := svc.CreateStep(ctx, models.CreateStepRequest{
		WidgetID:  widget.ID,
		QueryID:   query.ID,
		DataModel: map[string]interface{}{"type": "bar"},
	})
	require.NoError(t, err)
	assert.Equal(t, step.StatusInProgress, created.Status)

	t.Run("streaming data model updates", func(t *testing.T) {
		model := map[string]interface{}{
			"type":    "bar",
			"columns": []interface{}{map[string]interface{}{"generated_column_name": "month"}},
		}
		require.NoError(t, svc.UpdateStepDataModel(ctx, created.ID, model))

		st, err := svc.GetStep(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "bar", st.DataModel["type"])
		assert.Len(t, st.DataModel["columns"], 1)
	})

	t.Run("finalize step", func(t *testing.T) {
		require.NoError(t, svc.FinalizeStep(ctx, created.ID, models.FinalizeStepRequest{
			Status: "success",
			Code:   "df.groupby('month').sum()",
			Data:   []map[string]interface{}{{"month": "2026-01", "amount": float64(10)}},
		}))

		st, err := svc.GetStep(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusSuccess, st.Status)
		assert.Equal(t, "df.groupby('month').sum()", st.Code)
		require.Len(t, st.Data, 1)
	})

	t.Run("failed validation marks the step", func(t *testing.T) {
		other, err := svc.CreateStep(ctx, models.CreateStepRequest{WidgetID: widget.ID})
		require.NoError(t, err)
		require.NoError(t, svc.FinalizeStep(ctx, other.ID, models.FinalizeStepRequest{
			Status: "error",
			Error:  "generated code did not validate",
		}))

		st, err := svc.GetStep(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusError, st.Status)
		require.NotNil(t, st.ErrorMessage)
		assert.Equal(t, "generated code did not validate", *st.ErrorMessage)
	})

	t.Run("visualization draft to ready", func(t *testing.T) {
		viz, err := svc.CreateVisualization(ctx, models.CreateVisualizationRequest{
			StepID: created.ID,
			Kind:   "bar",
		})
		require.NoError(t, err)
		assert.Equal(t, visualization.StatusDraft, viz.Status)

		view := map[string]interface{}{"x": "month", "y": "amount"}
		require.NoError(t, svc.FinalizeVisualization(ctx, viz.ID, view))

		got, err := f.client.Visualization.Get(ctx, viz.ID)
		require.NoError(t, err)
		assert.Equal(t, visualization.StatusReady, got.Status)
		assert.Equal(t, "month", got.View["x"])
	})

	t.Run("listing", func(t *testing.T) {
		widgets, err := svc.ListWidgets(ctx, f.reportID)
		require.NoError(t, err)
		require.Len(t, widgets, 1)
		assert.Len(t, widgets[0].Edges.Steps, 2)

		queries, err := svc.ListQueries(ctx, f.reportID)
		require.NoError(t, err)
		assert.Len(t, queries, 1)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateWidget(ctx, models.CreateWidgetRequest{})
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateQuery(ctx, models.CreateQueryRequest{ReportID: f.reportID})
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateStep(ctx, models.CreateStepRequest{})
		assert.True(t, IsValidationError(err))
		_, err = svc.CreateVisualization(ctx, models.CreateVisualizationRequest{})
		assert.True(t, IsValidationError(err))
		assert.ErrorIs(t, svc.UpdateStepDataModel(ctx, "missing", nil), ErrNotFound)
	})
}
