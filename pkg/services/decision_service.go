package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/google/uuid"
)

// DecisionService manages plan decision rows
type DecisionService struct {
	client *ent.Client
}

// NewDecisionService creates a new DecisionService
func NewDecisionService(client *ent.Client) *DecisionService {
	return &DecisionService{client: client}
}

// UpsertDecision writes a decision keyed by (agent_execution_id, seq). All
// partial updates for one planner iteration reuse the same seq, so repeated
// upserts with equal payloads are no-ops beyond updated_at. The loop is the
// only writer for its execution.
func (s *DecisionService) UpsertDecision(httpCtx context.Context, req models.UpsertPlanDecisionRequest) (*ent.PlanDecision, error) {
	if req.AgentExecutionID == "" {
		return nil, NewValidationError("agent_execution_id", "required")
	}
	if req.Seq < 0 {
		return nil, NewValidationError("seq", "must be non-negative")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.PlanDecision.Query().
		Where(
			plandecision.AgentExecutionID(req.AgentExecutionID),
			plandecision.Seq(req.Seq),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query decision: %w", err)
	}

	planType := plandecision.PlanTypeAction
	if req.PlanType == "research" {
		planType = plandecision.PlanTypeResearch
	}

	if existing == nil {
		decision, err := s.client.PlanDecision.Create().
			SetID(uuid.New().String()).
			SetAgentExecutionID(req.AgentExecutionID).
			SetSeq(req.Seq).
			SetLoopIndex(req.LoopIndex).
			SetPlanType(planType).
			SetReasoningMessage(req.ReasoningMessage).
			SetAssistantMessage(req.AssistantMessage).
			SetActionName(req.ActionName).
			SetActionArguments(req.ActionArguments).
			SetAnalysisComplete(req.AnalysisComplete).
			SetFinalAnswer(req.FinalAnswer).
			SetErrorCode(req.ErrorCode).
			SetErrorMessage(req.ErrorMessage).
			SetFinal(req.Final).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create decision: %w", err)
		}
		return decision, nil
	}

	decision, err := s.client.PlanDecision.UpdateOneID(existing.ID).
		SetPlanType(planType).
		SetReasoningMessage(req.ReasoningMessage).
		SetAssistantMessage(req.AssistantMessage).
		SetActionName(req.ActionName).
		SetActionArguments(req.ActionArguments).
		SetAnalysisComplete(req.AnalysisComplete).
		SetFinalAnswer(req.FinalAnswer).
		SetErrorCode(req.ErrorCode).
		SetErrorMessage(req.ErrorMessage).
		SetFinal(req.Final).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}
	return decision, nil
}

// ListDecisions returns an execution's decisions in seq order
func (s *DecisionService) ListDecisions(ctx context.Context, agentExecutionID string) ([]*ent.PlanDecision, error) {
	rows, err := s.client.PlanDecision.Query().
		Where(plandecision.AgentExecutionID(agentExecutionID)).
		Order(ent.Asc(plandecision.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return rows, nil
}
