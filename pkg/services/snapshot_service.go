package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
	"github.com/google/uuid"
)

// SnapshotService persists slim context snapshots
type SnapshotService struct {
	client *ent.Client
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(client *ent.Client) *SnapshotService {
	return &SnapshotService{client: client}
}

// SaveSnapshot stores one slim snapshot taken at a loop checkpoint
func (s *SnapshotService) SaveSnapshot(httpCtx context.Context, agentExecutionID, completionID, kind string, loopIndex int, payload map[string]interface{}) (*ent.ContextSnapshot, error) {
	if agentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := s.client.ContextSnapshot.Create().
		SetID(uuid.New().String()).
		SetAgentExecutionID(agentExecutionID).
		SetCompletionID(completionID).
		SetKind(contextsnapshot.Kind(kind)).
		SetLoopIndex(loopIndex).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save context snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns an execution's snapshots in creation order
func (s *SnapshotService) ListSnapshots(ctx context.Context, agentExecutionID string) ([]*ent.ContextSnapshot, error) {
	rows, err := s.client.ContextSnapshot.Query().
		Where(contextsnapshot.AgentExecutionID(agentExecutionID)).
		Order(ent.Asc(contextsnapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list context snapshots: %w", err)
	}
	return rows, nil
}
