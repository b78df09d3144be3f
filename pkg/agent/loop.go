package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/models"
	"github.com/datalens-ai/datalens/pkg/planner"
	"github.com/datalens-ai/datalens/pkg/tools"
)

// errStopped marks a cooperative stop. Never surfaced as a failure.
var errStopped = errors.New("turn stopped")

// backgroundTaskTimeout bounds each detached task.
const backgroundTaskTimeout = 2 * time.Minute

// TurnParams identifies one turn's rows and input.
type TurnParams struct {
	ReportID           string
	UserID             string
	UserCompletionID   string
	SystemCompletionID string
	AgentExecutionID   string
	Prompt             models.Prompt
	Capabilities       []string
}

// Turn drives one agent execution: a bounded planner → tool → observe loop
// feeding an ordered event stream and idempotent block upserts.
type Turn struct {
	rt      *Runtime
	session Session
	stream  *events.Stream
	hub     *contexthub.Hub
	params  TurnParams
	state   *LoopState

	stopRequested atomic.Bool
	decisionID    string
	finalContent  string
	promptTokens  int
}

// NewTurn prepares a turn. Run must be called exactly once.
func NewTurn(rt *Runtime, params TurnParams) *Turn {
	session := rt.Sessions()
	mentions := make([]contexthub.Mention, 0, len(params.Prompt.Mentions))
	for _, m := range params.Prompt.Mentions {
		mentions = append(mentions, contexthub.Mention{Kind: m.Kind, ID: m.ID, Label: m.Label})
	}
	hub := contexthub.New(session.ContextStore(), rt.Counter, contexthub.Params{
		ReportID:        params.ReportID,
		CompletionID:    params.UserCompletionID,
		UserID:          params.UserID,
		Query:           params.Prompt.Content,
		ModelID:         modelID(params.Prompt, rt.Planner.DefaultModel),
		Mentions:        mentions,
		MaxInstructions: rt.Context.MaxInstructionsInContext,
		ObservationsMax: rt.Context.ObservationsMax,
		SampleTables:    rt.Context.SchemaSampleTables,
		IndexLimit:      rt.Context.SchemaIndexLimit,
	})
	return &Turn{
		rt:      rt,
		session: session,
		stream:  events.NewStream(params.SystemCompletionID, params.AgentExecutionID),
		hub:     hub,
		params:  params,
		state:   NewLoopState(),
	}
}

// Stream exposes the turn's event queue to the transport reader.
func (t *Turn) Stream() *events.Stream {
	return t.stream
}

// Run executes the turn to a terminal state. It always closes the stream,
// always finalizes the agent execution, and emits exactly one
// completion.finished.
func (t *Turn) Run(ctx context.Context) {
	defer t.stream.Close()

	runCtx, cancel := context.WithTimeout(ctx, t.rt.Loop.TurnTimeout)
	defer cancel()

	if t.rt.Watcher != nil {
		err := t.rt.Watcher.Watch(runCtx, t.params.SystemCompletionID, func() {
			t.stopRequested.Store(true)
			cancel()
		})
		if err != nil {
			slog.Warn("stop watcher unavailable", "completion_id", t.params.SystemCompletionID, "error", err)
		} else {
			defer t.rt.Watcher.Unwatch(context.Background(), t.params.SystemCompletionID)
		}
	}

	t.stream.Emit(runCtx, events.EventCompletionStarted, nil)

	err := t.guardedLoop(runCtx)
	t.finalize(err)
}

// guardedLoop converts panics into fatal turn errors.
func (t *Turn) guardedLoop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("agent loop panicked", "completion_id", t.params.SystemCompletionID, "panic", r)
			err = fmt.Errorf("agent loop panicked: %v", r)
		}
	}()
	return t.runLoop(ctx)
}

func (t *Turn) runLoop(ctx context.Context) error {
	// Startup: static and warm builders run concurrently, both awaited.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); t.hub.PrimeStatic(ctx) }()
	go func() { defer wg.Done(); t.hub.RefreshWarm(ctx) }()
	wg.Wait()

	t.saveSnapshotDetached(contexthub.SnapshotInitial, 0)
	t.recordInstructionUsageDetached()

	for t.state.LoopIndex = 0; t.state.LoopIndex < t.rt.Loop.StepLimit; t.state.LoopIndex++ {
		if err := t.checkStop(ctx); err != nil {
			return err
		}

		if t.state.LoopIndex > 0 {
			t.hub.RefreshWarm(ctx)
			t.saveSnapshotDetached(contexthub.SnapshotPreTool, t.state.LoopIndex)
		}

		// A tripped breaker forces a synthetic terminal answer instead of
		// another planner call.
		if t.state.BreakerTripped() != "" {
			return t.finishSuccess(ctx, t.state.BreakerMessage())
		}

		if t.state.LoopIndex == 0 {
			t.scheduleJudgeScoring("judge_early")
		}

		decision, err := t.runPlannerIteration(ctx)
		if err != nil {
			return err
		}
		if decision == nil {
			if t.state.AnalysisDone {
				// Retries exhausted; the fallback answer already finished the turn.
				return nil
			}
			// Invalid planner output; retry accounting already done.
			continue
		}

		if decision.AnalysisComplete && !decision.HasAction() {
			answer := decision.FinalAnswer
			if answer == "" {
				answer = decision.AssistantMessage
			}
			if err := t.finishSuccess(ctx, answer); err != nil {
				return err
			}
			t.runSuggestions(ctx)
			return nil
		}

		if decision.HasAction() {
			done, err := t.runToolIteration(ctx, decision)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			t.state.InvalidRetryCount = 0
		}
	}

	// Step limit exhausted: end with the last decision's content.
	return t.finishSuccess(ctx, t.finalContent)
}

// runPlannerIteration drives one planner call: skeleton block, streamed
// partials, final validation. Returns (nil, nil) when the output was invalid
// and the loop should retry.
func (t *Turn) runPlannerIteration(ctx context.Context) (*planner.Decision, error) {
	decisionSeq := t.stream.NextSeq()
	t.state.DecisionSeq = decisionSeq

	decisionID, err := t.session.UpsertDecision(ctx, models.UpsertPlanDecisionRequest{
		AgentExecutionID: t.params.AgentExecutionID,
		Seq:              decisionSeq,
		LoopIndex:        t.state.LoopIndex,
		PlanType:         planner.PlanTypeAction,
	})
	if err != nil {
		return nil, fmt.Errorf("create skeleton decision: %w", err)
	}
	t.decisionID = decisionID

	snap, err := t.upsertDecisionBlock(ctx, decisionID, decisionSeq, "", "", "in_progress", "")
	if err != nil {
		return nil, fmt.Errorf("create skeleton block: %w", err)
	}
	t.state.CurrentBlockID = snap.ID
	t.stream.Emit(ctx, events.EventBlockUpsert, events.BlockUpsertPayload{Block: snap})

	streamer := events.NewThrottledTextStreamer(t.stream, snap.ID, decisionSeq,
		t.rt.Planner.StreamThrottleChars, t.rt.Planner.StreamThrottleInterval)

	input := t.buildPlannerInput()
	driver := planner.NewDriver(t.rt.LLM)
	plannerEvents, err := driver.Stream(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("planner stream: %w", err)
	}

	var final *planner.Decision
	for ev := range plannerEvents {
		switch e := ev.(type) {
		case *planner.TokensEvent:
			// Raw token deltas are dropped; partials carry the structure.
		case *planner.PartialEvent:
			d := e.Decision
			if d.ReasoningMessage == "" && d.AssistantMessage == "" {
				continue
			}
			if _, err := t.session.UpsertDecision(ctx, t.decisionRequest(d, decisionSeq, false)); err != nil {
				slog.Warn("partial decision upsert failed", "error", err)
			}
			if _, err := t.upsertDecisionBlock(ctx, decisionID, decisionSeq, d.AssistantMessage, d.ReasoningMessage, "in_progress", ""); err != nil {
				slog.Warn("partial block upsert failed", "error", err)
			}
			streamer.Update(ctx, d.PlanType, d.ReasoningMessage, d.AssistantMessage)
		case *planner.FinalEvent:
			final = e.Decision
		}
	}

	if err := t.checkStop(ctx); err != nil {
		return nil, err
	}
	if final == nil {
		return nil, fmt.Errorf("planner stream ended without a final decision")
	}

	if final.Err != nil {
		t.state.InvalidRetryCount++
		t.stream.Emit(ctx, events.EventPlannerRetry, events.PlannerRetryPayload{
			Reason:  "invalid_output",
			Attempt: t.state.InvalidRetryCount,
		})
		t.hub.Observations.Add(contexthub.Observation{
			ToolName:  "planner",
			Status:    "error",
			ErrorCode: final.Err.Code,
			Summary:   final.Err.Message,
		})
		if t.state.InvalidRetryCount > t.rt.Loop.MaxInvalidRetries {
			return nil, t.finishSuccess(ctx, "I could not produce a valid plan for this request. Please rephrase and try again.")
		}
		return nil, nil
	}

	// Persist the final decision, rebuild the transcript, then mirror both
	// to the stream: one block.upsert and one decision.final.
	if _, err := t.session.UpsertDecision(ctx, t.decisionRequest(final, decisionSeq, true)); err != nil {
		return nil, fmt.Errorf("persist final decision: %w", err)
	}
	content := final.AssistantMessage
	if final.AnalysisComplete && final.FinalAnswer != "" {
		content = final.FinalAnswer
	}
	snap, err = t.upsertDecisionBlock(ctx, decisionID, decisionSeq, content, final.ReasoningMessage, "success", "")
	if err != nil {
		return nil, fmt.Errorf("persist final block: %w", err)
	}
	if _, err := t.session.RebuildTranscript(ctx, t.params.SystemCompletionID); err != nil {
		slog.Warn("transcript rebuild failed", "error", err)
	}
	streamer.Complete(ctx, final.PlanType, final.ReasoningMessage, final.AssistantMessage)
	t.stream.Emit(ctx, events.EventBlockUpsert, events.BlockUpsertPayload{Block: snap})

	actionName := ""
	if final.HasAction() {
		actionName = final.Action.Name
	}
	t.stream.Emit(ctx, events.EventDecisionFinal, events.DecisionFinalPayload{
		DecisionSeq:      decisionSeq,
		PlanType:         final.PlanType,
		AnalysisComplete: final.AnalysisComplete,
		FinalAnswer:      final.FinalAnswer,
		ActionName:       actionName,
	})

	if content != "" {
		t.finalContent = content
	}
	t.state.InvalidRetryCount = 0
	return final, nil
}

// runToolIteration executes the decision's action and records the
// observation. Returns done=true when the observation terminates the turn.
func (t *Turn) runToolIteration(ctx context.Context, decision *planner.Decision) (bool, error) {
	desc, resolveErr := t.rt.Registry.Resolve(decision.Action.Name, decision.PlanType, t.params.Capabilities)

	toolExecID, err := t.session.CreateToolExecution(ctx, models.CreateToolExecutionRequest{
		PlanDecisionID:   t.decisionID,
		AgentExecutionID: t.params.AgentExecutionID,
		ToolName:         decision.Action.Name,
		Arguments:        decision.Action.Arguments,
		AttemptNumber:    1,
	})
	if err != nil {
		return false, fmt.Errorf("create tool execution: %w", err)
	}
	t.stream.Emit(ctx, events.EventToolStarted, events.ToolStartedPayload{
		ToolExecutionID: toolExecID,
		ToolName:        decision.Action.Name,
		Arguments:       decision.Action.Arguments,
	})

	started := time.Now()
	var result *tools.Result
	if resolveErr != nil {
		result = &tools.Result{Observation: tools.Observation{
			Status:    "error",
			ErrorCode: "resolve_error",
			Summary:   resolveErr.Error(),
		}}
	} else {
		tracker := newArtifactTracker(t, toolExecID)
		sink := func(ev tools.ToolEvent) {
			t.stream.Emit(ctx, toolEventName(ev.Type), events.ToolEventPayload{
				ToolExecutionID: toolExecID,
				ToolName:        decision.Action.Name,
				Payload:         ev.Payload,
			})
			tracker.handle(ctx, ev)
		}
		result, err = t.rt.Runner.Run(ctx, tools.Runtime{
			ReportID:         t.params.ReportID,
			CompletionID:     t.params.SystemCompletionID,
			AgentExecutionID: t.params.AgentExecutionID,
			UserID:           t.params.UserID,
			View:             t.hub.View(),
		}, tools.Invocation{
			Tool:         decision.Action.Name,
			Arguments:    decision.Action.Arguments,
			PlanType:     decision.PlanType,
			Capabilities: t.params.Capabilities,
		}, sink)
		if err != nil {
			// Only cancellation reaches here; finalize classifies it as a
			// stop or a turn timeout.
			return false, err
		}
		tracker.finalizeFromResult(ctx, result)
		result = tracker.attachCreated(result)
	}
	durationMs := int(time.Since(started).Milliseconds())

	// Record the observation before finalizing rows so the next planner
	// call sees it even if persistence degrades.
	observation := contexthub.Observation{
		ToolName:          decision.Action.Name,
		Arguments:         decision.Action.Arguments,
		Summary:           result.Observation.Summary,
		Status:            result.Observation.Status,
		ErrorCode:         result.Observation.ErrorCode,
		AnalysisComplete:  result.Observation.AnalysisComplete,
		FinalAnswer:       result.Observation.FinalAnswer,
		ObservationPolicy: desc.ObservationPolicy,
	}
	t.hub.Observations.Add(observation)
	t.saveSnapshotDetached(contexthub.SnapshotPostTool, t.state.LoopIndex)

	if err := t.session.FinalizeToolExecution(ctx, toolExecID, models.FinalizeToolExecutionRequest{
		Status:                  result.Observation.Status,
		Result:                  result.Output,
		ResultSummary:           result.Observation.Summary,
		ErrorMessage:            errorMessageOf(result),
		DurationMs:              durationMs,
		CreatedWidgetID:         result.CreatedWidgetID,
		CreatedStepID:           result.CreatedStepID,
		CreatedVisualizationIDs: result.CreatedVisualizationIDs,
	}); err != nil {
		slog.Warn("tool execution finalize failed", "error", err)
	}

	// Tool blocks take their seq at finish time.
	toolSeq := t.stream.NextSeq()
	snap, err := t.session.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     t.params.SystemCompletionID,
		AgentExecutionID: t.params.AgentExecutionID,
		ToolExecutionID:  toolExecID,
		Seq:              toolSeq,
		Content:          result.Observation.Summary,
		Status:           blockStatus(result.Observation.Status),
		ErrorMessage:     errorMessageOf(result),
	})
	if err != nil {
		slog.Warn("tool block upsert failed", "error", err)
	} else {
		t.stream.Emit(ctx, events.EventBlockUpsert, events.BlockUpsertPayload{Block: snap})
	}
	if _, err := t.session.RebuildTranscript(ctx, t.params.SystemCompletionID); err != nil {
		slog.Warn("transcript rebuild failed", "error", err)
	}
	t.stream.Emit(ctx, events.EventToolFinished, events.ToolFinishedPayload{
		ToolExecutionID:         toolExecID,
		ToolName:                decision.Action.Name,
		Status:                  result.Observation.Status,
		ResultSummary:           result.Observation.Summary,
		ResultJSON:              result.Output,
		DurationMs:              durationMs,
		CreatedWidgetID:         result.CreatedWidgetID,
		CreatedStepID:           result.CreatedStepID,
		CreatedVisualizationIDs: result.CreatedVisualizationIDs,
	})

	if result.Observation.Status == "success" {
		t.state.RecordToolSuccess(decision.Action.Name, decision.Action.Arguments, t.rt.Loop.RepeatSuccessWindow)
	} else {
		t.state.RecordToolFailure(decision.Action.Name, t.rt.Loop.MaxToolFailures)
	}

	if result.Observation.AnalysisComplete {
		answer := result.Observation.FinalAnswer
		if answer == "" {
			answer = result.Observation.Summary
		}
		if err := t.finishSuccess(ctx, answer); err != nil {
			return false, err
		}
		t.runSuggestions(ctx)
		return true, nil
	}
	return false, nil
}

// finishSuccess writes the final answer, marks the completion successful,
// and emits completion.finished immediately.
func (t *Turn) finishSuccess(ctx context.Context, content string) error {
	t.state.AnalysisDone = true
	if content != "" {
		t.finalContent = content
		if err := t.session.SetCompletionContent(ctx, t.params.SystemCompletionID, content); err != nil {
			slog.Warn("final content write failed", "error", err)
		}
	}
	if err := t.session.SetCompletionStatus(ctx, t.params.SystemCompletionID, "success"); err != nil {
		slog.Warn("completion status write failed", "error", err)
	}
	t.emitFinished(events.StatusSuccess, "")
	return nil
}

// finalize runs the terminal handling after loop exit. Uses fresh contexts:
// the run context may already be cancelled.
func (t *Turn) finalize(loopErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.saveSnapshotDetached(contexthub.SnapshotFinal, t.state.LoopIndex)

	status := "success"
	errorMessage := ""
	switch {
	case loopErr == nil && !t.stopRequested.Load():
	case errors.Is(loopErr, errStopped) || t.stopRequested.Load():
		status = "sigkill"
		if err := t.session.CloseOpenBlocks(ctx, t.params.AgentExecutionID, "stopped", ""); err != nil {
			slog.Warn("closing open blocks failed", "error", err)
		}
		if err := t.session.SetCompletionStatus(ctx, t.params.SystemCompletionID, "stopped"); err != nil {
			slog.Warn("completion stop write failed", "error", err)
		}
		t.emitFinished(events.StatusStopped, "")
	default:
		status = "error"
		errorMessage = loopErr.Error()
		if err := t.session.CloseOpenBlocks(ctx, t.params.AgentExecutionID, "error", errorMessage); err != nil {
			slog.Warn("closing open blocks failed", "error", err)
		}
		if err := t.session.SetCompletionError(ctx, t.params.SystemCompletionID, errorMessage); err != nil {
			slog.Warn("completion error write failed", "error", err)
		}
		t.emitFinished(events.StatusError, errorMessage)
	}

	// Belt and braces: every turn ends with exactly one completion.finished.
	t.emitFinished(events.StatusSuccess, "")

	usage := models.UsageSnapshot{
		PromptTokens:     t.promptTokens,
		CompletionTokens: t.rt.Counter.Count(t.finalContent, t.modelID()),
	}
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	if err := t.session.SetUsage(ctx, t.params.SystemCompletionID, usage); err != nil {
		slog.Warn("usage write failed", "error", err)
	}

	if first, err := t.session.IsFirstUserTurn(ctx, t.params.ReportID); err == nil && first {
		t.scheduleTitleGeneration()
	}
	t.scheduleJudgeScoring("judge_late")

	if err := t.session.FinalizeExecution(ctx, t.params.AgentExecutionID, status,
		t.stream.LastSeq(), t.state.LoopIndex+1, errorMessage); err != nil {
		slog.Warn("agent execution finalize failed", "error", err)
	}
}

// emitFinished emits completion.finished at most once per turn.
func (t *Turn) emitFinished(status, errText string) {
	if t.state.FinishedEmitted {
		return
	}
	t.state.FinishedEmitted = true
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	t.stream.Emit(ctx, events.EventCompletionFinished, events.CompletionFinishedPayload{
		Status: status,
		Error:  errText,
	})
}

// checkStop polls the cooperative stop signals.
func (t *Turn) checkStop(ctx context.Context) error {
	if t.stopRequested.Load() {
		return errStopped
	}
	if ctx.Err() != nil {
		if t.stopRequested.Load() {
			return errStopped
		}
		return ctx.Err()
	}
	if stopped, err := t.session.IsStopRequested(ctx, t.params.SystemCompletionID); err == nil && stopped {
		t.stopRequested.Store(true)
		return errStopped
	}
	return nil
}

func (t *Turn) buildPlannerInput() *llm.GenerateInput {
	view := t.hub.View()
	contextText := contexthub.RenderPrompt(view)
	t.promptTokens = t.rt.Counter.Count(contextText, t.modelID())

	catalog := t.rt.Registry.Catalog(t.params.Capabilities)
	var catalogText strings.Builder
	catalogText.WriteString("Available tools:\n")
	for _, desc := range catalog {
		fmt.Fprintf(&catalogText, "- %s: %s (plan types: %s)\n",
			desc.Name, desc.Description, strings.Join(desc.PlanTypes, ", "))
	}

	system := "You are a data analyst agent. Decide the next step as a JSON decision object.\n\n" +
		contextText + "\n\n" + catalogText.String()

	return &llm.GenerateInput{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: t.params.Prompt.Content},
		},
		ModelID:        t.modelID(),
		ResponseSchema: planner.DecisionSchema(),
	}
}

func (t *Turn) decisionRequest(d *planner.Decision, seq int, final bool) models.UpsertPlanDecisionRequest {
	req := models.UpsertPlanDecisionRequest{
		AgentExecutionID: t.params.AgentExecutionID,
		Seq:              seq,
		LoopIndex:        t.state.LoopIndex,
		PlanType:         d.PlanType,
		ReasoningMessage: d.ReasoningMessage,
		AssistantMessage: d.AssistantMessage,
		AnalysisComplete: d.AnalysisComplete,
		FinalAnswer:      d.FinalAnswer,
		Final:            final,
	}
	if d.HasAction() {
		req.ActionName = d.Action.Name
		req.ActionArguments = d.Action.Arguments
	}
	if d.Err != nil {
		req.ErrorCode = d.Err.Code
		req.ErrorMessage = d.Err.Message
	}
	return req
}

func (t *Turn) upsertDecisionBlock(ctx context.Context, decisionID string, seq int, content, reasoning, status, errorMessage string) (events.BlockSnapshot, error) {
	return t.session.UpsertBlock(ctx, models.UpsertBlockRequest{
		CompletionID:     t.params.SystemCompletionID,
		AgentExecutionID: t.params.AgentExecutionID,
		PlanDecisionID:   decisionID,
		Seq:              seq,
		Content:          content,
		Reasoning:        reasoning,
		Status:           status,
		ErrorMessage:     errorMessage,
	})
}

func (t *Turn) saveSnapshotDetached(kind string, loopIndex int) {
	snapshot := t.hub.BuildSnapshot(kind, loopIndex)
	payload, err := snapshotPayload(snapshot)
	if err != nil {
		slog.Warn("snapshot marshal failed", "kind", kind, "error", err)
		return
	}
	session := t.rt.Sessions()
	agentExecutionID := t.params.AgentExecutionID
	completionID := t.params.SystemCompletionID
	t.rt.Tasks.Go("context_snapshot", backgroundTaskTimeout, func(ctx context.Context) {
		if err := session.SaveSnapshot(ctx, agentExecutionID, completionID, kind, loopIndex, payload); err != nil {
			slog.Warn("snapshot persist failed", "kind", kind, "error", err)
		}
	})
}

func (t *Turn) recordInstructionUsageDetached() {
	view := t.hub.View()
	ids := make([]string, 0, len(view.Static.Instructions.Items))
	for _, item := range view.Static.Instructions.Items {
		ids = append(ids, item.ID)
	}
	if len(ids) == 0 {
		return
	}
	session := t.rt.Sessions()
	t.rt.Tasks.Go("instruction_usage", backgroundTaskTimeout, func(ctx context.Context) {
		if err := session.RecordInstructionUsage(ctx, ids); err != nil {
			slog.Warn("instruction usage record failed", "error", err)
		}
	})
}

func (t *Turn) modelID() string {
	return modelID(t.params.Prompt, t.rt.Planner.DefaultModel)
}

func modelID(prompt models.Prompt, fallback string) string {
	if prompt.ModelID != "" {
		return prompt.ModelID
	}
	return fallback
}

func toolEventName(toolEventType string) string {
	switch toolEventType {
	case tools.EventPartial:
		return events.EventToolPartial
	case tools.EventStdout:
		return events.EventToolStdout
	case tools.EventError:
		return events.EventToolError
	default:
		return events.EventToolProgress
	}
}

func blockStatus(observationStatus string) string {
	if observationStatus == "error" {
		return "error"
	}
	return "success"
}

func errorMessageOf(result *tools.Result) string {
	if result.Observation.Status != "error" {
		return ""
	}
	return result.Observation.Summary
}

func snapshotPayload(snapshot contexthub.Snapshot) (map[string]interface{}, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
