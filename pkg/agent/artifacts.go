package agent

import (
	"context"
	"log/slog"

	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/tools"
)

// Progress stages recognized by the artifact tracker. Emitted by the
// widget-building tool family while code generation streams.
const (
	stageDataModelType      = "data_model_type_determined"
	stageColumnAdded        = "column_added"
	stageSeriesConfigured   = "series_configured"
	stageValidatingCode     = "validating_code"
	stageWidgetCreateNeeded = "widget_creation_needed"
)

// artifactTracker turns a tool's streamed progress stages into persisted
// artifacts (query, step, visualization) and artifact delta events, so the
// client can render a widget skeleton before the tool finishes.
//
// Handles are per-invocation: the loop creates a fresh tracker for every
// tool execution.
type artifactTracker struct {
	turn            *Turn
	toolExecutionID string

	widgetID        string
	queryID         string
	stepID          string
	visualizationID string

	dataModel   map[string]interface{}
	columnNames map[string]bool
	stepFailed  bool
}

func newArtifactTracker(t *Turn, toolExecutionID string) *artifactTracker {
	return &artifactTracker{
		turn:            t,
		toolExecutionID: toolExecutionID,
		columnNames:     make(map[string]bool),
	}
}

// handle applies one streamed tool event. Non-progress events and unknown
// stages pass through untouched.
func (a *artifactTracker) handle(ctx context.Context, ev tools.ToolEvent) {
	if ev.Type != tools.EventProgress {
		return
	}
	stage, _ := ev.Payload["stage"].(string)
	switch stage {
	case stageDataModelType:
		a.onDataModelType(ctx, ev.Payload)
	case stageColumnAdded:
		a.onColumnAdded(ctx, ev.Payload)
	case stageSeriesConfigured:
		a.onSeriesConfigured(ctx, ev.Payload)
	case stageValidatingCode:
		a.onValidatingCode(ctx, ev.Payload)
	case stageWidgetCreateNeeded:
		a.onWidgetCreationNeeded(ctx, ev.Payload)
	}
}

// onDataModelType creates the query, step, and draft visualization the first
// time the tool commits to a data model type.
func (a *artifactTracker) onDataModelType(ctx context.Context, payload map[string]interface{}) {
	if a.stepID != "" {
		return
	}
	modelType, _ := payload["data_model_type"].(string)
	a.dataModel = map[string]interface{}{
		"type":    modelType,
		"columns": []interface{}{},
	}
	if !a.ensureArtifacts(ctx, payload) {
		return
	}
	a.emitDelta(ctx, []string{"data_model.type"}, map[string]interface{}{
		"data_model": map[string]interface{}{"type": modelType},
	})
}

// onColumnAdded appends one streamed column, deduplicated by its generated
// name. The tool may re-emit a column after a retry.
func (a *artifactTracker) onColumnAdded(ctx context.Context, payload map[string]interface{}) {
	if a.stepID == "" || a.dataModel == nil {
		return
	}
	column, ok := payload["column"].(map[string]interface{})
	if !ok {
		return
	}
	name, _ := column["generated_column_name"].(string)
	if name != "" && a.columnNames[name] {
		return
	}
	if name != "" {
		a.columnNames[name] = true
	}
	columns, _ := a.dataModel["columns"].([]interface{})
	a.dataModel["columns"] = append(columns, column)

	a.persistDataModel(ctx)
	a.emitDelta(ctx, []string{"data_model.columns"}, map[string]interface{}{"column": column})
}

func (a *artifactTracker) onSeriesConfigured(ctx context.Context, payload map[string]interface{}) {
	if a.stepID == "" || a.dataModel == nil {
		return
	}
	series, ok := payload["series"]
	if !ok {
		return
	}
	a.dataModel["series"] = series

	a.persistDataModel(ctx)
	a.emitDelta(ctx, []string{"data_model.series"}, map[string]interface{}{"series": series})
}

// onValidatingCode marks the step failed when generated code did not
// validate. The tool itself decides whether to retry; the step state just
// mirrors the latest validation outcome.
func (a *artifactTracker) onValidatingCode(ctx context.Context, payload map[string]interface{}) {
	valid, ok := payload["valid"].(bool)
	if !ok || valid || a.stepID == "" {
		return
	}
	message, _ := payload["error"].(string)
	a.stepFailed = true
	if err := a.turn.session.Artifacts().FinalizeStep(ctx, a.stepID, models.FinalizeStepRequest{
		Status: "error",
		Error:  message,
	}); err != nil {
		slog.Warn("step validation-failure write failed", "step_id", a.stepID, "error", err)
	}
}

// onWidgetCreationNeeded applies the tool-provided full data model, creating
// the artifacts first when earlier streaming stages were skipped.
func (a *artifactTracker) onWidgetCreationNeeded(ctx context.Context, payload map[string]interface{}) {
	if a.stepID == "" && !a.ensureArtifacts(ctx, payload) {
		return
	}
	if full, ok := payload["data_model"].(map[string]interface{}); ok {
		a.dataModel = full
		a.persistDataModel(ctx)
		a.emitDelta(ctx, []string{"data_model"}, map[string]interface{}{"data_model": full})
	}
}

// ensureArtifacts creates the widget, query, step, and draft visualization.
// Returns false when creation failed; streaming continues without artifact
// mirroring in that case.
func (a *artifactTracker) ensureArtifacts(ctx context.Context, payload map[string]interface{}) bool {
	store := a.turn.session.Artifacts()

	if a.widgetID == "" {
		title, _ := payload["title"].(string)
		if title == "" {
			title = "Untitled widget"
		}
		id, err := store.CreateWidget(ctx, models.CreateWidgetRequest{
			ReportID:     a.turn.params.ReportID,
			CompletionID: a.turn.params.SystemCompletionID,
			Title:        title,
		})
		if err != nil {
			slog.Warn("widget create failed", "error", err)
			return false
		}
		a.widgetID = id
	}

	if a.queryID == "" {
		sql, _ := payload["sql"].(string)
		if sql == "" {
			sql, _ = payload["query"].(string)
		}
		if sql != "" {
			dataSourceID, _ := payload["data_source_id"].(string)
			id, err := store.CreateQuery(ctx, models.CreateQueryRequest{
				ReportID:     a.turn.params.ReportID,
				DataSourceID: dataSourceID,
				SQL:          sql,
			})
			if err != nil {
				slog.Warn("query create failed", "error", err)
			} else {
				a.queryID = id
				a.turn.stream.Emit(ctx, events.EventQueryCreated, events.QueryCreatedPayload{
					QueryID: id,
					SQL:     sql,
				})
			}
		}
	}

	stepID, err := store.CreateStep(ctx, models.CreateStepRequest{
		WidgetID:  a.widgetID,
		QueryID:   a.queryID,
		DataModel: a.dataModel,
	})
	if err != nil {
		slog.Warn("step create failed", "widget_id", a.widgetID, "error", err)
		return false
	}
	a.stepID = stepID

	kind, _ := payload["data_model_type"].(string)
	vizID, err := store.CreateVisualization(ctx, models.CreateVisualizationRequest{
		StepID: stepID,
		Kind:   kind,
	})
	if err != nil {
		slog.Warn("visualization create failed", "step_id", stepID, "error", err)
		return true
	}
	a.visualizationID = vizID
	a.turn.stream.Emit(ctx, events.EventVisualizationCreated, events.VisualizationPayload{
		VisualizationID: vizID,
		StepID:          stepID,
		Kind:            kind,
		Status:          "draft",
	})
	return true
}

func (a *artifactTracker) persistDataModel(ctx context.Context) {
	if err := a.turn.session.Artifacts().UpdateStepDataModel(ctx, a.stepID, a.dataModel); err != nil {
		slog.Warn("step data model update failed", "step_id", a.stepID, "error", err)
	}
}

func (a *artifactTracker) emitDelta(ctx context.Context, changedFields []string, change map[string]interface{}) {
	a.turn.stream.Emit(ctx, events.EventBlockDeltaArtifact, events.BlockDeltaArtifactPayload{
		BlockID:         a.turn.state.CurrentBlockID,
		WidgetID:        a.widgetID,
		StepID:          a.stepID,
		VisualizationID: a.visualizationID,
		ChangedFields:   changedFields,
		Change:          change,
	})
}

// finalizeFromResult applies the finished tool's widget_data to the step and
// visualization. No-op for tools that did not produce widget data.
func (a *artifactTracker) finalizeFromResult(ctx context.Context, result *tools.Result) {
	if result == nil || result.Observation.Status != "success" || a.stepID == "" || a.stepFailed {
		return
	}
	widgetData, ok := result.Output["widget_data"].(map[string]interface{})
	if !ok {
		return
	}

	req := models.FinalizeStepRequest{Status: "success"}
	if code, ok := widgetData["code"].(string); ok {
		req.Code = code
	}
	if dataModel, ok := widgetData["data_model"].(map[string]interface{}); ok {
		req.DataModel = dataModel
		a.dataModel = dataModel
	}
	if rows, ok := widgetData["data"].([]interface{}); ok {
		req.Data = toRowMaps(rows)
	}
	if err := a.turn.session.Artifacts().FinalizeStep(ctx, a.stepID, req); err != nil {
		slog.Warn("step finalize failed", "step_id", a.stepID, "error", err)
	}

	if a.visualizationID != "" {
		view, _ := widgetData["view"].(map[string]interface{})
		if err := a.turn.session.Artifacts().FinalizeVisualization(ctx, a.visualizationID, view); err != nil {
			slog.Warn("visualization finalize failed", "visualization_id", a.visualizationID, "error", err)
		} else {
			a.turn.stream.Emit(ctx, events.EventVisualizationUpdated, events.VisualizationPayload{
				VisualizationID: a.visualizationID,
				StepID:          a.stepID,
				Status:          "ready",
				View:            view,
			})
		}
	}

	if tables, ok := widgetData["used_tables"].([]interface{}); ok && len(tables) > 0 {
		slog.Info("widget table usage", "step_id", a.stepID, "tables", tables)
	}
}

// attachCreated copies the tracker's handles onto the result when the tool
// did not report them itself.
func (a *artifactTracker) attachCreated(result *tools.Result) *tools.Result {
	if result == nil {
		return result
	}
	if result.CreatedWidgetID == "" {
		result.CreatedWidgetID = a.widgetID
	}
	if result.CreatedStepID == "" {
		result.CreatedStepID = a.stepID
	}
	if len(result.CreatedVisualizationIDs) == 0 && a.visualizationID != "" {
		result.CreatedVisualizationIDs = []string{a.visualizationID}
	}
	return result
}

func toRowMaps(rows []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if m, ok := row.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
