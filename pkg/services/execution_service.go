package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/google/uuid"
)

// ExecutionService manages agent execution records
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution creates the agent execution backing one turn
func (s *ExecutionService) CreateExecution(httpCtx context.Context, completionID, reportID string) (*ent.AgentExecution, error) {
	if completionID == "" {
		return nil, NewValidationError("completion_id", "required")
	}
	if reportID == "" {
		return nil, NewValidationError("report_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetCompletionID(completionID).
		SetReportID(reportID).
		SetStatus(agentexecution.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent execution: %w", err)
	}
	return exec, nil
}

// GetExecution retrieves an agent execution by ID
func (s *ExecutionService) GetExecution(ctx context.Context, id string) (*ent.AgentExecution, error) {
	exec, err := s.client.AgentExecution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent execution: %w", err)
	}
	return exec, nil
}

// GetByCompletion retrieves the agent execution for a system completion
func (s *ExecutionService) GetByCompletion(ctx context.Context, completionID string) (*ent.AgentExecution, error) {
	exec, err := s.client.AgentExecution.Query().
		Where(agentexecution.CompletionID(completionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent execution by completion: %w", err)
	}
	return exec, nil
}

// FinalizeExecution records the terminal status and loop accounting
func (s *ExecutionService) FinalizeExecution(ctx context.Context, id string, status agentexecution.Status, lastSeq, loopIterations int, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.GetExecution(writeCtx, id)
	if err != nil {
		return err
	}
	completedAt := time.Now()

	update := s.client.AgentExecution.UpdateOneID(id).
		SetStatus(status).
		SetLastSeq(lastSeq).
		SetLoopIterations(loopIterations).
		SetCompletedAt(completedAt).
		SetDurationMs(int(completedAt.Sub(exec.StartedAt).Milliseconds()))
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize agent execution: %w", err)
	}
	return nil
}
