package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/toolexecution"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// ToolExecutionService manages tool execution rows
type ToolExecutionService struct {
	client *ent.Client
}

// NewToolExecutionService creates a new ToolExecutionService
func NewToolExecutionService(client *ent.Client) *ToolExecutionService {
	return &ToolExecutionService{client: client}
}

// CreateExecution records the start of one tool invocation
func (s *ToolExecutionService) CreateExecution(httpCtx context.Context, req models.CreateToolExecutionRequest) (*ent.ToolExecution, error) {
	if req.PlanDecisionID == "" {
		return nil, NewValidationError("plan_decision_id", "required")
	}
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.ToolExecution.Create().
		SetID(uuid.New().String()).
		SetPlanDecisionID(req.PlanDecisionID).
		SetAgentExecutionID(req.AgentExecutionID).
		SetToolName(req.ToolName).
		SetToolAction(req.ToolAction).
		SetArguments(req.Arguments).
		SetStatus(toolexecution.StatusRunning).
		SetAttemptNumber(req.AttemptNumber).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool execution: %w", err)
	}
	return exec, nil
}

// FinalizeExecution records the outcome of a tool invocation
func (s *ToolExecutionService) FinalizeExecution(ctx context.Context, id string, req models.FinalizeToolExecutionRequest) (*ent.ToolExecution, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := toolexecution.StatusSuccess
	if req.Status == "error" {
		status = toolexecution.StatusError
	}
	update := s.client.ToolExecution.UpdateOneID(id).
		SetStatus(status).
		SetResultSummary(req.ResultSummary).
		SetDurationMs(req.DurationMs).
		SetCompletedAt(time.Now())
	if req.Result != nil {
		update.SetResult(req.Result)
	}
	if req.ErrorMessage != "" {
		update.SetErrorMessage(req.ErrorMessage)
	}
	if req.CreatedWidgetID != "" {
		update.SetCreatedWidgetID(req.CreatedWidgetID)
	}
	if req.CreatedStepID != "" {
		update.SetCreatedStepID(req.CreatedStepID)
	}
	if len(req.CreatedVisualizationIDs) > 0 {
		update.SetCreatedVisualizationIds(req.CreatedVisualizationIDs)
	}

	exec, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to finalize tool execution: %w", err)
	}
	return exec, nil
}

// ListExecutions returns an agent execution's tool calls in start order
func (s *ToolExecutionService) ListExecutions(ctx context.Context, agentExecutionID string) ([]*ent.ToolExecution, error) {
	rows, err := s.client.ToolExecution.Query().
		Where(toolexecution.AgentExecutionID(agentExecutionID)).
		Order(ent.Asc(toolexecution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool executions: %w", err)
	}
	return rows, nil
}
