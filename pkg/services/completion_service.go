package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// CompletionService manages the user/system completion pairs of a report
type CompletionService struct {
	client *ent.Client
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(client *ent.Client) *CompletionService {
	return &CompletionService{client: client}
}

// TurnPair is the freshly created user/system completion pair
type TurnPair struct {
	User   *ent.Completion
	System *ent.Completion
}

// CreateTurn creates the user completion and its child system completion in
// one transaction. The system completion starts in_progress and is owned by
// the agent loop until it reaches a terminal status.
func (s *CompletionService) CreateTurn(httpCtx context.Context, req models.CreateCompletionRequest) (*TurnPair, error) {
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}
	if req.Prompt.Content == "" {
		return nil, NewValidationError("prompt.content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	turnIndex, err := tx.Completion.Query().
		Where(completion.ReportID(req.ReportID), completion.RoleEQ(completion.RoleUser)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count turns: %w", err)
	}

	promptJSON, err := toMap(req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt: %w", err)
	}

	user, err := tx.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetRole(completion.RoleUser).
		SetPrompt(promptJSON).
		SetStatus(completion.StatusSuccess).
		SetTurnIndex(turnIndex).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user completion: %w", err)
	}

	system, err := tx.Completion.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetParentID(user.ID).
		SetRole(completion.RoleSystem).
		SetStatus(completion.StatusInProgress).
		SetTurnIndex(turnIndex).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create system completion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit turn: %w", err)
	}
	return &TurnPair{User: user, System: system}, nil
}

// GetCompletion retrieves a completion by ID
func (s *CompletionService) GetCompletion(ctx context.Context, id string) (*ent.Completion, error) {
	c, err := s.client.Completion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	return c, nil
}

// UpdateStatus transitions a completion's status. Terminal completions are
// not overwritten.
func (s *CompletionService) UpdateStatus(ctx context.Context, id string, status completion.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Completion.Update().
		Where(completion.ID(id), completion.StatusEQ(completion.StatusInProgress)).
		SetStatus(status).
		SetUpdatedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update completion status: %w", err)
	}
	if n == 0 {
		current, err := s.GetCompletion(writeCtx, id)
		if err != nil {
			return err
		}
		if current.Status != status {
			return ErrTerminal
		}
	}
	return nil
}

// SetContent rewrites the system completion's response payload
func (s *CompletionService) SetContent(ctx context.Context, id, content string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Completion.UpdateOneID(id).
		SetCompletion(map[string]interface{}{"content": content}).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set completion content: %w", err)
	}
	return nil
}

// SetError records a fatal error on the completion
func (s *CompletionService) SetError(ctx context.Context, id, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Completion.UpdateOneID(id).
		SetStatus(completion.StatusError).
		SetErrorMessage(message).
		SetCompletion(map[string]interface{}{"content": message}).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set completion error: %w", err)
	}
	return nil
}

// RequestStop sets sigkill on the system completion. The running loop
// observes it and stops cooperatively.
func (s *CompletionService) RequestStop(ctx context.Context, id string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Completion.UpdateOneID(id).
		SetSigkill(true).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to request stop: %w", err)
	}
	return nil
}

// IsStopRequested reports whether sigkill has been set on the completion
func (s *CompletionService) IsStopRequested(ctx context.Context, id string) (bool, error) {
	c, err := s.GetCompletion(ctx, id)
	if err != nil {
		return false, err
	}
	return c.Sigkill, nil
}

// SetUsage records the turn's token usage snapshot
func (s *CompletionService) SetUsage(ctx context.Context, id string, usage models.UsageSnapshot) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	usageJSON, err := toMap(usage)
	if err != nil {
		return fmt.Errorf("failed to marshal usage: %w", err)
	}
	err = s.client.Completion.UpdateOneID(id).
		SetUsage(usageJSON).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set usage: %w", err)
	}
	return nil
}

// SetJudgeScores records AI judge scoring (background tasks)
func (s *CompletionService) SetJudgeScores(ctx context.Context, id string, scores map[string]interface{}) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Completion.UpdateOneID(id).
		SetJudgeScores(scores).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set judge scores: %w", err)
	}
	return nil
}

// IsFirstUserTurn reports whether the report has exactly one user turn
func (s *CompletionService) IsFirstUserTurn(ctx context.Context, reportID string) (bool, error) {
	n, err := s.client.Completion.Query().
		Where(completion.ReportID(reportID), completion.RoleEQ(completion.RoleUser)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count user turns: %w", err)
	}
	return n == 1, nil
}

// ListHistory returns the report's completions in turn order, excluding the
// still-open head user completion and its system child.
func (s *CompletionService) ListHistory(ctx context.Context, reportID, excludeCompletionID string) ([]*ent.Completion, error) {
	q := s.client.Completion.Query().
		Where(completion.ReportID(reportID)).
		Order(ent.Asc(completion.FieldTurnIndex), ent.Asc(completion.FieldCreatedAt))
	if excludeCompletionID != "" {
		q = q.Where(
			completion.IDNEQ(excludeCompletionID),
			completion.Or(
				completion.ParentIDIsNil(),
				completion.ParentIDNEQ(excludeCompletionID),
			),
		)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return rows, nil
}

// toMap round-trips a typed struct into the map shape ent JSON fields expect
func toMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
