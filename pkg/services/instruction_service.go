package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// InstructionService manages report instructions
type InstructionService struct {
	client *ent.Client
}

// NewInstructionService creates a new InstructionService
func NewInstructionService(client *ent.Client) *InstructionService {
	return &InstructionService{client: client}
}

// CreateInstruction adds one instruction to a report
func (s *InstructionService) CreateInstruction(httpCtx context.Context, req models.CreateInstructionRequest) (*ent.Instruction, error) {
	if req.ReportID == "" {
		return nil, NewValidationError("report_id", "required")
	}
	if req.Text == "" {
		return nil, NewValidationError("text", "required")
	}
	loadMode := instruction.LoadModeIntelligent
	switch req.LoadMode {
	case "", "intelligent":
	case "always":
		loadMode = instruction.LoadModeAlways
	case "disabled":
		loadMode = instruction.LoadModeDisabled
	default:
		return nil, NewValidationError("load_mode", "must be always, intelligent, or disabled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Instruction.Create().
		SetID(uuid.New().String()).
		SetReportID(req.ReportID).
		SetText(req.Text).
		SetCategory(req.Category).
		SetLoadMode(loadMode).
		SetPosition(req.Position)
	if req.BuildID != "" {
		create.SetBuildID(req.BuildID)
	}
	if req.AISource != "" {
		create.SetAiSource(req.AISource)
	}
	inst, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instruction: %w", err)
	}
	return inst, nil
}

// ListInstructions returns a report's instructions in position order
func (s *InstructionService) ListInstructions(ctx context.Context, reportID string) ([]*ent.Instruction, error) {
	rows, err := s.client.Instruction.Query().
		Where(instruction.ReportID(reportID)).
		Order(ent.Asc(instruction.FieldPosition), ent.Asc(instruction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructions: %w", err)
	}
	return rows, nil
}

// RecordUsage increments the usage count of the instructions actually sent
// to the planner. Called from a background task.
func (s *InstructionService) RecordUsage(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Instruction.Update().
		Where(instruction.IDIn(ids...)).
		AddUsageCount(1).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record instruction usage: %w", err)
	}
	return nil
}
