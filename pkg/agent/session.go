package agent

import (
	"context"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/services"
)

// serviceSession is the database-backed Session. Each instance wraps its own
// service set over the shared ent client; sessions are cheap and the factory
// hands a fresh one to every background task.
type serviceSession struct {
	reports      *services.ReportService
	completions  *services.CompletionService
	executions   *services.ExecutionService
	decisions    *services.DecisionService
	toolExecs    *services.ToolExecutionService
	blocks       *services.BlockService
	snapshots    *services.SnapshotService
	instructions *services.InstructionService
	artifacts    *serviceArtifacts
	store        *services.ContextStore
}

// NewServiceSessionFactory returns a factory producing database-backed
// sessions over the given ent client.
func NewServiceSessionFactory(client *ent.Client) SessionFactory {
	return func() Session {
		return &serviceSession{
			reports:      services.NewReportService(client),
			completions:  services.NewCompletionService(client),
			executions:   services.NewExecutionService(client),
			decisions:    services.NewDecisionService(client),
			toolExecs:    services.NewToolExecutionService(client),
			blocks:       services.NewBlockService(client),
			snapshots:    services.NewSnapshotService(client),
			instructions: services.NewInstructionService(client),
			artifacts:    &serviceArtifacts{svc: services.NewArtifactService(client)},
			store:        services.NewContextStore(client),
		}
	}
}

func (s *serviceSession) UpsertDecision(ctx context.Context, req models.UpsertPlanDecisionRequest) (string, error) {
	d, err := s.decisions.UpsertDecision(ctx, req)
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

func (s *serviceSession) UpsertBlock(ctx context.Context, req models.UpsertBlockRequest) (events.BlockSnapshot, error) {
	b, err := s.blocks.UpsertBlock(ctx, req)
	if err != nil {
		return events.BlockSnapshot{}, err
	}
	snap := events.BlockSnapshot{
		ID:           b.ID,
		CompletionID: b.CompletionID,
		Seq:          b.Seq,
		BlockIndex:   b.BlockIndex,
		Content:      b.Content,
		Reasoning:    b.Reasoning,
		Status:       string(b.Status),
	}
	if b.PlanDecisionID != nil {
		snap.PlanDecisionID = *b.PlanDecisionID
	}
	if b.ToolExecutionID != nil {
		snap.ToolExecutionID = *b.ToolExecutionID
	}
	return snap, nil
}

func (s *serviceSession) RebuildTranscript(ctx context.Context, completionID string) (string, error) {
	return s.blocks.RebuildTranscript(ctx, completionID)
}

func (s *serviceSession) CloseOpenBlocks(ctx context.Context, agentExecutionID, status, errorMessage string) error {
	_, err := s.blocks.CloseOpenBlocks(ctx, agentExecutionID, status, errorMessage)
	return err
}

func (s *serviceSession) CreateToolExecution(ctx context.Context, req models.CreateToolExecutionRequest) (string, error) {
	te, err := s.toolExecs.CreateExecution(ctx, req)
	if err != nil {
		return "", err
	}
	return te.ID, nil
}

func (s *serviceSession) FinalizeToolExecution(ctx context.Context, id string, req models.FinalizeToolExecutionRequest) error {
	_, err := s.toolExecs.FinalizeExecution(ctx, id, req)
	return err
}

func (s *serviceSession) SetCompletionStatus(ctx context.Context, completionID, status string) error {
	return s.completions.UpdateStatus(ctx, completionID, completion.Status(status))
}

func (s *serviceSession) SetCompletionContent(ctx context.Context, completionID, content string) error {
	return s.completions.SetContent(ctx, completionID, content)
}

func (s *serviceSession) SetCompletionError(ctx context.Context, completionID, message string) error {
	return s.completions.SetError(ctx, completionID, message)
}

func (s *serviceSession) SetUsage(ctx context.Context, completionID string, usage models.UsageSnapshot) error {
	return s.completions.SetUsage(ctx, completionID, usage)
}

func (s *serviceSession) SetJudgeScores(ctx context.Context, completionID string, scores map[string]interface{}) error {
	return s.completions.SetJudgeScores(ctx, completionID, scores)
}

func (s *serviceSession) IsStopRequested(ctx context.Context, completionID string) (bool, error) {
	return s.completions.IsStopRequested(ctx, completionID)
}

func (s *serviceSession) IsFirstUserTurn(ctx context.Context, reportID string) (bool, error) {
	return s.completions.IsFirstUserTurn(ctx, reportID)
}

func (s *serviceSession) SetReportTitle(ctx context.Context, reportID, title string) error {
	return s.reports.SetTitle(ctx, reportID, title)
}

func (s *serviceSession) FinalizeExecution(ctx context.Context, agentExecutionID, status string, lastSeq, loopIterations int, errorMessage string) error {
	return s.executions.FinalizeExecution(ctx, agentExecutionID, agentexecution.Status(status), lastSeq, loopIterations, errorMessage)
}

func (s *serviceSession) SaveSnapshot(ctx context.Context, agentExecutionID, completionID, kind string, loopIndex int, payload map[string]interface{}) error {
	_, err := s.snapshots.SaveSnapshot(ctx, agentExecutionID, completionID, kind, loopIndex, payload)
	return err
}

func (s *serviceSession) CreateInstruction(ctx context.Context, req models.CreateInstructionRequest) (string, error) {
	inst, err := s.instructions.CreateInstruction(ctx, req)
	if err != nil {
		return "", err
	}
	return inst.ID, nil
}

func (s *serviceSession) RecordInstructionUsage(ctx context.Context, ids []string) error {
	return s.instructions.RecordUsage(ctx, ids)
}

func (s *serviceSession) ContextStore() contexthub.Store {
	return s.store
}

func (s *serviceSession) Artifacts() ArtifactStore {
	return s.artifacts
}

// serviceArtifacts adapts ArtifactService to the id-returning ArtifactStore
// surface the loop consumes.
type serviceArtifacts struct {
	svc *services.ArtifactService
}

func (a *serviceArtifacts) CreateWidget(ctx context.Context, req models.CreateWidgetRequest) (string, error) {
	w, err := a.svc.CreateWidget(ctx, req)
	if err != nil {
		return "", err
	}
	return w.ID, nil
}

func (a *serviceArtifacts) CreateQuery(ctx context.Context, req models.CreateQueryRequest) (string, error) {
	q, err := a.svc.CreateQuery(ctx, req)
	if err != nil {
		return "", err
	}
	return q.ID, nil
}

func (a *serviceArtifacts) CreateStep(ctx context.Context, req models.CreateStepRequest) (string, error) {
	st, err := a.svc.CreateStep(ctx, req)
	if err != nil {
		return "", err
	}
	return st.ID, nil
}

func (a *serviceArtifacts) GetStepDataModel(ctx context.Context, id string) (map[string]interface{}, error) {
	st, err := a.svc.GetStep(ctx, id)
	if err != nil {
		return nil, err
	}
	return st.DataModel, nil
}

func (a *serviceArtifacts) UpdateStepDataModel(ctx context.Context, id string, dataModel map[string]interface{}) error {
	return a.svc.UpdateStepDataModel(ctx, id, dataModel)
}

func (a *serviceArtifacts) FinalizeStep(ctx context.Context, id string, req models.FinalizeStepRequest) error {
	return a.svc.FinalizeStep(ctx, id, req)
}

func (a *serviceArtifacts) CreateVisualization(ctx context.Context, req models.CreateVisualizationRequest) (string, error) {
	v, err := a.svc.CreateVisualization(ctx, req)
	if err != nil {
		return "", err
	}
	return v.ID, nil
}

func (a *serviceArtifacts) FinalizeVisualization(ctx context.Context, id string, view map[string]interface{}) error {
	return a.svc.FinalizeVisualization(ctx, id, view)
}
