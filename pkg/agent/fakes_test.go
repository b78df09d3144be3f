package agent

import (
	"context"
	"fmt"
	"strings"
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

// fakeLLM routes Generate calls by response schema so the planner, the
// suggester, and the background judge/title tasks each get their own script,
// regardless of call interleaving.
type fakeLLM struct {
	mu sync.Mutex

	plannerScripts [][]llm.Chunk
	plannerCalls   int
	plannerInputs  []*llm.GenerateInput

	suggestionScript []llm.Chunk
	judgeScript      []llm.Chunk
	titleScript      []llm.Chunk
}

func textScript(s string) []llm.Chunk {
	return []llm.Chunk{&llm.TextChunk{Content: s}}
}

func (f *fakeLLM) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	f.mu.Lock()
	var script []llm.Chunk
	schema := string(input.ResponseSchema)
	switch {
	case strings.Contains(schema, "PlanDecision"):
		idx := f.plannerCalls
		if idx >= len(f.plannerScripts) {
			idx = len(f.plannerScripts) - 1
		}
		if idx >= 0 {
			script = f.plannerScripts[idx]
		}
		f.plannerCalls++
		f.plannerInputs = append(f.plannerInputs, input)
	case strings.Contains(schema, `"instructions"`):
		script = f.suggestionScript
	case strings.Contains(schema, "groundedness"):
		script = f.judgeScript
	default:
		script = f.titleScript
	}
	f.mu.Unlock()

	ch := make(chan llm.Chunk, len(script))
	for _, c := range script {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (f *fakeLLM) PlannerCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plannerCalls
}

func (f *fakeLLM) PlannerInput(i int) *llm.GenerateInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.plannerInputs) {
		return nil
	}
	return f.plannerInputs[i]
}

// emptyStore backs the hub with no stored context.
type emptyStore struct{}

func (emptyStore) ListDataSources(context.Context, string, bool) ([]contexthub.DataSourceRecord, error) {
	return nil, nil
}
func (emptyStore) ListInstructions(context.Context, string) ([]contexthub.InstructionRecord, error) {
	return nil, nil
}
func (emptyStore) ListMessages(context.Context, string, string) ([]contexthub.MessageRecord, error) {
	return nil, nil
}
func (emptyStore) ListResources(context.Context, string) ([]contexthub.Resource, error) {
	return nil, nil
}
func (emptyStore) ListFiles(context.Context, string) ([]contexthub.FileRef, error) { return nil, nil }
func (emptyStore) ListWidgets(context.Context, string) ([]contexthub.WidgetRef, error) {
	return nil, nil
}
func (emptyStore) ListQueries(context.Context, string) ([]contexthub.QueryRef, error) {
	return nil, nil
}
func (emptyStore) ListCode(context.Context, string) ([]contexthub.CodeSnippet, error) {
	return nil, nil
}
func (emptyStore) ListEntities(context.Context, string, string) ([]contexthub.Entity, error) {
	return nil, nil
}

type blockRow struct {
	snapshot events.BlockSnapshot
	req      models.UpsertBlockRequest
}

type toolExecRow struct {
	id        string
	created   models.CreateToolExecutionRequest
	finalized *models.FinalizeToolExecutionRequest
}

type closeBlocksCall struct {
	status       string
	errorMessage string
}

type finalizeExecCall struct {
	status         string
	lastSeq        int
	loopIterations int
	errorMessage   string
}

// fakeSession is an in-memory Session shared by the loop and background
// tasks in tests.
type fakeSession struct {
	mu sync.Mutex

	decisions     map[int]models.UpsertPlanDecisionRequest // keyed by seq
	decisionIDs   map[int]string
	blocks        []*blockRow
	toolExecs     []*toolExecRow
	transcripts   int
	closeCalls    []closeBlocksCall
	finalizeCalls []finalizeExecCall

	completionStatus  map[string]string
	completionContent map[string]string
	completionError   map[string]string
	usage             map[string]models.UsageSnapshot
	judgeScores       []map[string]interface{}
	reportTitle       string

	instructions     []models.CreateInstructionRequest
	instructionUsage [][]string
	snapshots        []string // kinds, in save order

	stopChecks int
	stopAfter  int // IsStopRequested returns true from this check on; 0 = never
	firstTurn  bool

	artifacts *fakeArtifacts
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		decisions:         make(map[int]models.UpsertPlanDecisionRequest),
		decisionIDs:       make(map[int]string),
		completionStatus:  make(map[string]string),
		completionContent: make(map[string]string),
		completionError:   make(map[string]string),
		usage:             make(map[string]models.UsageSnapshot),
		artifacts:         newFakeArtifacts(),
	}
}

func (s *fakeSession) UpsertDecision(ctx context.Context, req models.UpsertPlanDecisionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.decisionIDs[req.Seq]
	if !ok {
		id = fmt.Sprintf("decision-%d", req.Seq)
		s.decisionIDs[req.Seq] = id
	}
	s.decisions[req.Seq] = req
	return id, nil
}

func (s *fakeSession) UpsertBlock(ctx context.Context, req models.UpsertBlockRequest) (events.BlockSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.blocks {
		same := (req.PlanDecisionID != "" && row.req.PlanDecisionID == req.PlanDecisionID) ||
			(req.ToolExecutionID != "" && row.req.ToolExecutionID == req.ToolExecutionID)
		if same && row.req.CompletionID == req.CompletionID {
			row.req = req
			row.snapshot.Content = req.Content
			row.snapshot.Reasoning = req.Reasoning
			row.snapshot.Status = req.Status
			return row.snapshot, nil
		}
	}
	row := &blockRow{
		snapshot: events.BlockSnapshot{
			ID:              fmt.Sprintf("block-%d", len(s.blocks)+1),
			CompletionID:    req.CompletionID,
			PlanDecisionID:  req.PlanDecisionID,
			ToolExecutionID: req.ToolExecutionID,
			Seq:             req.Seq,
			BlockIndex:      len(s.blocks),
			Content:         req.Content,
			Reasoning:       req.Reasoning,
			Status:          req.Status,
		},
		req: req,
	}
	s.blocks = append(s.blocks, row)
	return row.snapshot, nil
}

func (s *fakeSession) RebuildTranscript(ctx context.Context, completionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts++
	var parts []string
	for _, row := range s.blocks {
		if row.req.CompletionID == completionID && row.req.Content != "" {
			parts = append(parts, row.req.Content)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func (s *fakeSession) CloseOpenBlocks(ctx context.Context, agentExecutionID, status, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCalls = append(s.closeCalls, closeBlocksCall{status: status, errorMessage: errorMessage})
	for _, row := range s.blocks {
		if row.snapshot.Status == "in_progress" {
			row.snapshot.Status = status
			row.req.Status = status
		}
	}
	return nil
}

func (s *fakeSession) CreateToolExecution(ctx context.Context, req models.CreateToolExecutionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := &toolExecRow{id: fmt.Sprintf("toolexec-%d", len(s.toolExecs)+1), created: req}
	s.toolExecs = append(s.toolExecs, row)
	return row.id, nil
}

func (s *fakeSession) FinalizeToolExecution(ctx context.Context, id string, req models.FinalizeToolExecutionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.toolExecs {
		if row.id == id {
			r := req
			row.finalized = &r
			return nil
		}
	}
	return fmt.Errorf("unknown tool execution %s", id)
}

func (s *fakeSession) SetCompletionStatus(ctx context.Context, completionID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completionStatus[completionID] = status
	return nil
}

func (s *fakeSession) SetCompletionContent(ctx context.Context, completionID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completionContent[completionID] = content
	return nil
}

func (s *fakeSession) SetCompletionError(ctx context.Context, completionID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completionError[completionID] = message
	return nil
}

func (s *fakeSession) SetUsage(ctx context.Context, completionID string, usage models.UsageSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage[completionID] = usage
	return nil
}

func (s *fakeSession) SetJudgeScores(ctx context.Context, completionID string, scores map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.judgeScores = append(s.judgeScores, scores)
	return nil
}

func (s *fakeSession) IsStopRequested(ctx context.Context, completionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopChecks++
	return s.stopAfter > 0 && s.stopChecks >= s.stopAfter, nil
}

func (s *fakeSession) IsFirstUserTurn(ctx context.Context, reportID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstTurn, nil
}

func (s *fakeSession) SetReportTitle(ctx context.Context, reportID, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportTitle = title
	return nil
}

func (s *fakeSession) FinalizeExecution(ctx context.Context, agentExecutionID, status string, lastSeq, loopIterations int, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizeCalls = append(s.finalizeCalls, finalizeExecCall{
		status:         status,
		lastSeq:        lastSeq,
		loopIterations: loopIterations,
		errorMessage:   errorMessage,
	})
	return nil
}

func (s *fakeSession) SaveSnapshot(ctx context.Context, agentExecutionID, completionID, kind string, loopIndex int, payload map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, kind)
	return nil
}

func (s *fakeSession) CreateInstruction(ctx context.Context, req models.CreateInstructionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructions = append(s.instructions, req)
	return fmt.Sprintf("instruction-%d", len(s.instructions)), nil
}

func (s *fakeSession) RecordInstructionUsage(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructionUsage = append(s.instructionUsage, ids)
	return nil
}

func (s *fakeSession) ContextStore() contexthub.Store { return emptyStore{} }
func (s *fakeSession) Artifacts() ArtifactStore       { return s.artifacts }

// decisionBySeq returns the stored decision row for a seq.
func (s *fakeSession) decisionBySeq(seq int) (models.UpsertPlanDecisionRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.decisions[seq]
	return d, ok
}

func (s *fakeSession) blockRows() []blockRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]blockRow, 0, len(s.blocks))
	for _, row := range s.blocks {
		out = append(out, *row)
	}
	return out
}

func (s *fakeSession) toolExecRows() []toolExecRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]toolExecRow, 0, len(s.toolExecs))
	for _, row := range s.toolExecs {
		out = append(out, *row)
	}
	return out
}

// fakeArtifacts is an in-memory ArtifactStore.
type fakeArtifacts struct {
	mu sync.Mutex

	widgets        []models.CreateWidgetRequest
	queries        []models.CreateQueryRequest
	steps          []models.CreateStepRequest
	visualizations []models.CreateVisualizationRequest

	stepDataModels map[string]map[string]interface{}
	stepFinals     map[string]models.FinalizeStepRequest
	vizFinals      map[string]map[string]interface{}
}

func newFakeArtifacts() *fakeArtifacts {
	return &fakeArtifacts{
		stepDataModels: make(map[string]map[string]interface{}),
		stepFinals:     make(map[string]models.FinalizeStepRequest),
		vizFinals:      make(map[string]map[string]interface{}),
	}
}

func (f *fakeArtifacts) CreateWidget(ctx context.Context, req models.CreateWidgetRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.widgets = append(f.widgets, req)
	return fmt.Sprintf("widget-%d", len(f.widgets)), nil
}

func (f *fakeArtifacts) CreateQuery(ctx context.Context, req models.CreateQueryRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, req)
	return fmt.Sprintf("query-%d", len(f.queries)), nil
}

func (f *fakeArtifacts) CreateStep(ctx context.Context, req models.CreateStepRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, req)
	return fmt.Sprintf("step-%d", len(f.steps)), nil
}

func (f *fakeArtifacts) GetStepDataModel(ctx context.Context, id string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stepDataModels[id], nil
}

func (f *fakeArtifacts) UpdateStepDataModel(ctx context.Context, id string, dataModel map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepDataModels[id] = dataModel
	return nil
}

func (f *fakeArtifacts) FinalizeStep(ctx context.Context, id string, req models.FinalizeStepRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stepFinals[id] = req
	return nil
}

func (f *fakeArtifacts) CreateVisualization(ctx context.Context, req models.CreateVisualizationRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visualizations = append(f.visualizations, req)
	return fmt.Sprintf("viz-%d", len(f.visualizations)), nil
}

func (f *fakeArtifacts) FinalizeVisualization(ctx context.Context, id string, view map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vizFinals[id] = view
	return nil
}

// fakeWatcher captures the registered stop callback so tests can trigger it.
type fakeWatcher struct {
	mu        sync.Mutex
	watched   []string
	unwatched []string
	onStop    func()
}

func (w *fakeWatcher) Watch(ctx context.Context, completionID string, onStop func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watched = append(w.watched, completionID)
	w.onStop = onStop
	return nil
}

func (w *fakeWatcher) Unwatch(ctx context.Context, completionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.unwatched = append(w.unwatched, completionID)
}

func (w *fakeWatcher) stop() {
	w.mu.Lock()
	fn := w.onStop
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func testLoopConfig() config.LoopConfig {
	return config.LoopConfig{
		StepLimit:           10,
		MaxInvalidRetries:   2,
		MaxToolFailures:     3,
		RepeatSuccessWindow: 2,
		TurnTimeout:         30 * time.Second,
	}
}

func newTestRuntime(session *fakeSession, client llm.Client, registry *tools.Registry) *Runtime {
	if registry == nil {
		registry = tools.NewRegistry()
	}
	return &Runtime{
		Loop:    testLoopConfig(),
		Planner: config.PlannerConfig{DefaultModel: "gpt-4o", StreamThrottleChars: 24, StreamThrottleInterval: 250 * time.Millisecond},
		Context: config.ContextConfig{
			MaxInstructionsInContext: 50,
			ObservationsMax:          8,
			SchemaSampleTables:       10,
			SchemaIndexLimit:         100,
		},
		LLM:      client,
		Registry: registry,
		Runner: tools.NewRunner(registry,
			tools.RetryPolicy{MaxAttempts: 1, Backoff: time.Millisecond},
			tools.TimeoutPolicy{Start: 2 * time.Second, Idle: 2 * time.Second, Hard: 5 * time.Second}),
		Counter:  tokens.NewCounter(),
		Sessions: func() Session { return session },
		Tasks:    NewTaskGroup(),
	}
}

func testTurnParams() TurnParams {
	return TurnParams{
		ReportID:           "report-1",
		UserID:             "user-1",
		UserCompletionID:   "comp-user",
		SystemCompletionID: "comp-system",
		AgentExecutionID:   "exec-1",
		Prompt:             models.Prompt{Content: "show quarterly revenue"},
	}
}

// runTurn executes the turn synchronously and returns all emitted events.
func runTurn(rt *Runtime, params TurnParams) []events.Event {
	turn := NewTurn(rt, params)
	turn.Run(context.Background())
	evs := turn.Stream().Drain()
	rt.Tasks.Wait()
	return evs
}

func eventsNamed(evs []events.Event, name string) []events.Event {
	var out []events.Event
	for _, ev := range evs {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}

func eventIndex(evs []events.Event, name string) int {
	for i, ev := range evs {
		if ev.Name == name {
			return i
		}
	}
	return -1
}
