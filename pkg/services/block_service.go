package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// BlockService manages completion blocks and the transcript assembled from
// them
type BlockService struct {
	client *ent.Client
}

// NewBlockService creates a new BlockService
func NewBlockService(client *ent.Client) *BlockService {
	return &BlockService{client: client}
}

// UpsertBlock writes one block keyed by (completion_id, plan_decision_id |
// tool_execution_id). A new block takes the next block_index within the
// completion; repeated upserts update content, reasoning, and status in
// place.
func (s *BlockService) UpsertBlock(httpCtx context.Context, req models.UpsertBlockRequest) (*ent.CompletionBlock, error) {
	if req.CompletionID == "" {
		return nil, NewValidationError("completion_id", "required")
	}
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	if (req.PlanDecisionID == "") == (req.ToolExecutionID == "") {
		return nil, NewValidationError("plan_decision_id", "exactly one of plan_decision_id and tool_execution_id must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := s.client.CompletionBlock.Query().
		Where(completionblock.CompletionID(req.CompletionID))
	if req.PlanDecisionID != "" {
		q = q.Where(completionblock.PlanDecisionID(req.PlanDecisionID))
	} else {
		q = q.Where(completionblock.ToolExecutionID(req.ToolExecutionID))
	}
	existing, err := q.Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query block: %w", err)
	}

	if existing == nil {
		blockIndex, err := s.client.CompletionBlock.Query().
			Where(completionblock.CompletionID(req.CompletionID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count blocks: %w", err)
		}
		create := s.client.CompletionBlock.Create().
			SetID(uuid.New().String()).
			SetCompletionID(req.CompletionID).
			SetAgentExecutionID(req.AgentExecutionID).
			SetSeq(req.Seq).
			SetBlockIndex(blockIndex).
			SetContent(req.Content).
			SetReasoning(req.Reasoning).
			SetStatus(completionblock.Status(req.Status))
		if req.PlanDecisionID != "" {
			create.SetPlanDecisionID(req.PlanDecisionID)
		}
		if req.ToolExecutionID != "" {
			create.SetToolExecutionID(req.ToolExecutionID)
		}
		if req.ErrorMessage != "" {
			create.SetErrorMessage(req.ErrorMessage)
		}
		block, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create block: %w", err)
		}
		return block, nil
	}

	update := s.client.CompletionBlock.UpdateOneID(existing.ID).
		SetSeq(req.Seq).
		SetContent(req.Content).
		SetReasoning(req.Reasoning).
		SetStatus(completionblock.Status(req.Status)).
		SetUpdatedAt(time.Now())
	if req.ErrorMessage != "" {
		update.SetErrorMessage(req.ErrorMessage)
	}
	block, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update block: %w", err)
	}
	return block, nil
}

// ListBlocks returns a completion's blocks in transcript order
func (s *BlockService) ListBlocks(ctx context.Context, completionID string) ([]*ent.CompletionBlock, error) {
	rows, err := s.client.CompletionBlock.Query().
		Where(completionblock.CompletionID(completionID)).
		Order(ent.Asc(completionblock.FieldSeq), ent.Asc(completionblock.FieldBlockIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}
	return rows, nil
}

// RebuildTranscript rewrites the completion's textual content from its
// ordered blocks. Idempotent: rebuilding twice yields identical content.
func (s *BlockService) RebuildTranscript(ctx context.Context, completionID string) (string, error) {
	blocks, err := s.ListBlocks(ctx, completionID)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, b := range blocks {
		if b.Content != "" {
			parts = append(parts, b.Content)
		}
	}
	content := strings.Join(parts, "\n\n")

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = s.client.Completion.UpdateOneID(completionID).
		SetCompletion(map[string]interface{}{"content": content}).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to rebuild transcript: %w", err)
	}
	return content, nil
}

// CloseOpenBlocks transitions every in_progress block of an execution to the
// given terminal status. Used on stop and on fatal errors.
func (s *BlockService) CloseOpenBlocks(ctx context.Context, agentExecutionID, status, errorMessage string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.CompletionBlock.Update().
		Where(
			completionblock.AgentExecutionID(agentExecutionID),
			completionblock.StatusEQ(completionblock.StatusInProgress),
		).
		SetStatus(completionblock.Status(status)).
		SetUpdatedAt(time.Now())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	n, err := update.Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to close open blocks: %w", err)
	}
	return n, nil
}

// BlockViews maps blocks to their client-facing shape
func BlockViews(blocks []*ent.CompletionBlock) []models.BlockView {
	out := make([]models.BlockView, 0, len(blocks))
	for _, b := range blocks {
		view := models.BlockView{
			ID:         b.ID,
			Seq:        b.Seq,
			BlockIndex: b.BlockIndex,
			Content:    b.Content,
			Reasoning:  b.Reasoning,
			Status:     string(b.Status),
		}
		if b.PlanDecisionID != nil {
			view.PlanDecisionID = *b.PlanDecisionID
		}
		if b.ToolExecutionID != nil {
			view.ToolExecutionID = *b.ToolExecutionID
		}
		if b.ErrorMessage != nil {
			view.ErrorMessage = *b.ErrorMessage
		}
		out = append(out, view)
	}
	return out
}
