// Package agent implements the per-turn orchestrator: the bounded planner →
// tool → observe loop, its circuit breakers, the ordered event stream it
// feeds, and the background tasks launched around a turn.
package agent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/datalens-ai/datalens/pkg/config"
	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/tokens"
	"github.com/datalens-ai/datalens/pkg/tools"
)

// Session is the persistence surface one turn (or one background task)
// writes through. Background tasks obtain their own session from the
// factory; the loop's session is never shared.
type Session interface {
	UpsertDecision(ctx context.Context, req models.UpsertPlanDecisionRequest) (string, error)
	UpsertBlock(ctx context.Context, req models.UpsertBlockRequest) (events.BlockSnapshot, error)
	RebuildTranscript(ctx context.Context, completionID string) (string, error)
	CloseOpenBlocks(ctx context.Context, agentExecutionID, status, errorMessage string) error

	CreateToolExecution(ctx context.Context, req models.CreateToolExecutionRequest) (string, error)
	FinalizeToolExecution(ctx context.Context, id string, req models.FinalizeToolExecutionRequest) error

	SetCompletionStatus(ctx context.Context, completionID, status string) error
	SetCompletionContent(ctx context.Context, completionID, content string) error
	SetCompletionError(ctx context.Context, completionID, message string) error
	SetUsage(ctx context.Context, completionID string, usage models.UsageSnapshot) error
	SetJudgeScores(ctx context.Context, completionID string, scores map[string]interface{}) error
	IsStopRequested(ctx context.Context, completionID string) (bool, error)
	IsFirstUserTurn(ctx context.Context, reportID string) (bool, error)
	SetReportTitle(ctx context.Context, reportID, title string) error

	FinalizeExecution(ctx context.Context, agentExecutionID, status string, lastSeq, loopIterations int, errorMessage string) error
	SaveSnapshot(ctx context.Context, agentExecutionID, completionID, kind string, loopIndex int, payload map[string]interface{}) error

	CreateInstruction(ctx context.Context, req models.CreateInstructionRequest) (string, error)
	RecordInstructionUsage(ctx context.Context, ids []string) error

	ContextStore() contexthub.Store
	Artifacts() ArtifactStore
}

// ArtifactStore is the artifact surface streaming tools mutate.
type ArtifactStore interface {
	CreateWidget(ctx context.Context, req models.CreateWidgetRequest) (string, error)
	CreateQuery(ctx context.Context, req models.CreateQueryRequest) (string, error)
	CreateStep(ctx context.Context, req models.CreateStepRequest) (string, error)
	GetStepDataModel(ctx context.Context, id string) (map[string]interface{}, error)
	UpdateStepDataModel(ctx context.Context, id string, dataModel map[string]interface{}) error
	FinalizeStep(ctx context.Context, id string, req models.FinalizeStepRequest) error
	CreateVisualization(ctx context.Context, req models.CreateVisualizationRequest) (string, error)
	FinalizeVisualization(ctx context.Context, id string, view map[string]interface{}) error
}

// SessionFactory hands out isolated persistence sessions. The loop takes
// one; every detached background task takes its own.
type SessionFactory func() Session

// Watcher delivers external stop requests to a running turn.
type Watcher interface {
	Watch(ctx context.Context, completionID string, onStop func()) error
	Unwatch(ctx context.Context, completionID string)
}

// Runtime is the explicit dependency context a turn runs under. Nothing the
// loop touches is ambient.
type Runtime struct {
	Loop    config.LoopConfig
	Planner config.PlannerConfig
	Context config.ContextConfig

	LLM      llm.Client
	Registry *tools.Registry
	Runner   *tools.Runner
	Counter  *tokens.Counter
	Sessions SessionFactory

	// Watcher is optional; without one, stops are only observed through the
	// sigkill poll before each iteration.
	Watcher Watcher

	// Tasks owns the detached background tasks. They are tied to the
	// process, not to the turn: cancelling a turn does not cancel them.
	Tasks *TaskGroup
}

// TaskGroup launches detached fire-and-forget tasks with panic recovery.
// Wait exists for shutdown and tests.
type TaskGroup struct {
	wg sync.WaitGroup
}

// NewTaskGroup creates an empty task group.
func NewTaskGroup() *TaskGroup {
	return &TaskGroup{}
}

// Go runs fn detached with its own timeout context. Failures inside fn must
// be handled by fn itself; panics are recovered and logged.
func (g *TaskGroup) Go(name string, timeout time.Duration, fn func(ctx context.Context)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("background task panicked", "task", name, "panic", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		fn(ctx)
	}()
}

// Wait blocks until all launched tasks finish.
func (g *TaskGroup) Wait() {
	g.wg.Wait()
}
