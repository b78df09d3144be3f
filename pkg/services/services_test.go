package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/test/util"
)

// fixture provisions a schema-isolated database with the row chain most
// service tests need: report → user/system completion pair → agent execution.
type fixture struct {
	client *ent.Client

	reportID string
	userID   string
	systemID string
	execID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	report, err := NewReportService(client).CreateReport(ctx, "", "org-1")
	require.NoError(t, err)

	pair, err := NewCompletionService(client).CreateTurn(ctx, models.CreateCompletionRequest{
		ReportID: report.ID,
		Prompt:   models.Prompt{Content: "show quarterly revenue"},
	})
	require.NoError(t, err)

	exec, err := NewExecutionService(client).CreateExecution(ctx, pair.System.ID, report.ID)
	require.NoError(t, err)

	return &fixture{
		client:   client,
		reportID: report.ID,
		userID:   pair.User.ID,
		systemID: pair.System.ID,
		execID:   exec.ID,
	}
}

func (f *fixture) createDecision(t *testing.T, seq int) *ent.PlanDecision {
	t.Helper()
	decision, err := NewDecisionService(f.client).UpsertDecision(context.Background(), models.UpsertPlanDecisionRequest{
		AgentExecutionID: f.execID,
		Seq:              seq,
		PlanType:         "action",
	})
	require.NoError(t, err)
	return decision
}

func (f *fixture) createToolExecution(t *testing.T, decisionID string) *ent.ToolExecution {
	t.Helper()
	exec, err := NewToolExecutionService(f.client).CreateExecution(context.Background(), models.CreateToolExecutionRequest{
		PlanDecisionID:   decisionID,
		AgentExecutionID: f.execID,
		ToolName:         "create_data",
		AttemptNumber:    1,
	})
	require.NoError(t, err)
	return exec
}
