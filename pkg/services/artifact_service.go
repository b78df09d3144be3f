package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/visualization"
	"github.com/datalens-ai/datalens/ent/widget"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// ArtifactService manages the widgets, steps, queries, and visualizations
// created by streaming tools
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// CreateWidget creates a widget owned by a completion
func (s *ArtifactService) CreateWidget(httpCtx context.Context, req models.CreateWidgetRequest) (*ent.Widget, error) {
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w, err := s.client.Widget.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetCompletionID(req.CompletionID).
		SetTitle(req.Title).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}
	return w, nil
}

// CreateQuery records one executed query
func (s *ArtifactService) CreateQuery(httpCtx context.Context, req models.CreateQueryRequest) (*ent.DataQuery, error) {
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}
	if req.SQL == "" {
		return nil, NewValidationError("sql", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q, err := s.client.DataQuery.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetDataSourceID(req.DataSourceID).
		SetSQL(req.SQL).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}
	return q, nil
}

// CreateStep creates a widget step
func (s *ArtifactService) CreateStep(httpCtx context.Context, req models.CreateStepRequest) (*ent.Step, error) {
	if req.WidgetID == "" {
		return nil, NewValidationError("widget_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Step.Create().
		SetID(uuid.New().String()).
		SetWidgetID(req.WidgetID).
		SetQueryID(req.QueryID).
		SetCode(req.Code).
		SetStatus(step.StatusInProgress)
	if req.DataModel != nil {
		create.SetDataModel(req.DataModel)
	}
	st, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create step: %w", err)
	}
	return st, nil
}

// GetStep retrieves a step by ID
func (s *ArtifactService) GetStep(ctx context.Context, id string) (*ent.Step, error) {
	st, err := s.client.Step.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return st, nil
}

// UpdateStepDataModel rewrites a step's data model during tool streaming
func (s *ArtifactService) UpdateStepDataModel(ctx context.Context, id string, dataModel map[string]interface{}) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Step.UpdateOneID(id).
		SetDataModel(dataModel).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update step data model: %w", err)
	}
	return nil
}

// FinalizeStep writes the step's finished code, data, and data model
func (s *ArtifactService) FinalizeStep(ctx context.Context, id string, req models.FinalizeStepRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := step.StatusSuccess
	if req.Status == "error" {
		status = step.StatusError
	}
	update := s.client.Step.UpdateOneID(id).
		SetStatus(status).
		SetUpdatedAt(time.Now())
	if req.Code != "" {
		update.SetCode(req.Code)
	}
	if req.Data != nil {
		update.SetData(req.Data)
	}
	if req.DataModel != nil {
		update.SetDataModel(req.DataModel)
	}
	if req.Error != "" {
		update.SetErrorMessage(req.Error)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize step: %w", err)
	}
	return nil
}

// CreateVisualization creates a draft visualization for a step
func (s *ArtifactService) CreateVisualization(httpCtx context.Context, req models.CreateVisualizationRequest) (*ent.Visualization, error) {
	if req.StepID == "" {
		return nil, NewValidationError("step_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Visualization.Create().
		SetID(uuid.New().String()).
		SetStepID(req.StepID).
		SetKind(req.Kind).
		SetStatus(visualization.StatusDraft)
	if req.View != nil {
		create.SetView(req.View)
	}
	v, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create visualization: %w", err)
	}
	return v, nil
}

// FinalizeVisualization marks a visualization ready with its final view
func (s *ArtifactService) FinalizeVisualization(ctx context.Context, id string, view map[string]interface{}) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Visualization.UpdateOneID(id).
		SetStatus(visualization.StatusReady).
		SetUpdatedAt(time.Now())
	if view != nil {
		update.SetView(view)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize visualization: %w", err)
	}
	return nil
}

// ListWidgets returns a report's widgets with their step counts
func (s *ArtifactService) ListWidgets(ctx context.Context, reportID string) ([]*ent.Widget, error) {
	rows, err := s.client.Widget.Query().
		Where(widget.ReportID(reportID)).
		WithSteps().
		Order(ent.Asc(widget.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	return rows, nil
}

// ListQueries returns a report's queries, newest first
func (s *ArtifactService) ListQueries(ctx context.Context, reportID string) ([]*ent.DataQuery, error) {
	rows, err := s.client.DataQuery.Query().
		Where(dataquery.ReportID(reportID)).
		Order(ent.Desc(dataquery.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	return rows, nil
}
