package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalens-ai/datalens/pkg/contexthub"
	"github.com/datalens-ai/datalens/pkg/events"
	"github.com/datalens-ai/datalens/pkg/llm"
	"github.com/datalens-ai/datalens/pkg/tools"
)

const (
	finalDecisionJSON = `{"plan_type":"action","reasoning_message":"done thinking",` +
		`"assistant_message":"Here is the revenue summary.","analysis_complete":true,` +
		`"final_answer":"Revenue grew 12% quarter over quarter."}`

	actionDecisionJSON = `{"plan_type":"action","reasoning_message":"need the data first",` +
		`"assistant_message":"Pulling the data now.",` +
		`"action":{"name":"create_data","arguments":{"query":"revenue by month"}},` +
		`"analysis_complete":false}`

	judgeJSON = `{"relevance":0.9,"groundedness":0.8,"completeness":0.7}`
)

func newDataRegistry(t *testing.T, exec tools.ExecutorFunc) *tools.Registry {
	t.Helper()
	registry := tools.NewRegistry()
	err := registry.Register(tools.Descriptor{
		Name:              "create_data",
		Description:       "Runs a query and loads the result",
		PlanTypes:         []string{"action"},
		ObservationPolicy: tools.ObservationOnTrigger,
	}, exec)
	require.NoError(t, err)
	return registry
}

func successExecutor(summary string) tools.ExecutorFunc {
	return func(ctx context.Context, rt tools.Runtime, args map[string]interface{}, emit tools.EmitFunc) (*tools.Result, error) {
		emit(tools.ToolEvent{Type: tools.EventProgress, Payload: map[string]interface{}{"phase": "loading"}})
		return &tools.Result{
			Observation: tools.Observation{Status: "success", Summary: summary},
			Output:      map[string]interface{}{"rows": 2},
		}, nil
	}
}

func TestTurn_FinalAnswer(t *testing.T) {
	client := &fakeLLM{
		plannerScripts:   [][]llm.Chunk{textScript(finalDecisionJSON)},
		suggestionScript: textScript(`{"instructions":[{"text":"Prefer quarterly granularity","category":"analysis"}]}`),
		judgeScript:      textScript(judgeJSON),
		titleScript:      textScript("Quarterly Revenue Growth"),
	}
	session := newFakeSession()
	session.firstTurn = true
	rt := newTestRuntime(session, client, nil)

	evs := runTurn(rt, testTurnParams())

	require.NotEmpty(t, evs)
	assert.Equal(t, events.EventCompletionStarted, evs[0].Name)
	assert.Equal(t, 1, evs[0].Seq)

	upserts := eventsNamed(evs, events.EventBlockUpsert)
	require.GreaterOrEqual(t, len(upserts), 2)
	skeleton := upserts[0].Data.(events.BlockUpsertPayload).Block
	assert.Equal(t, 2, skeleton.Seq, "decision seq is allocated before the skeleton event")
	assert.Equal(t, "in_progress", skeleton.Status)
	finalBlock := upserts[len(upserts)-1].Data.(events.BlockUpsertPayload).Block
	assert.Equal(t, "success", finalBlock.Status)
	assert.Equal(t, "Revenue grew 12% quarter over quarter.", finalBlock.Content)

	partials := eventsNamed(evs, events.EventDecisionPartial)
	require.NotEmpty(t, partials)
	for _, ev := range partials {
		assert.Equal(t, 2, ev.Data.(events.DecisionPartialPayload).DecisionSeq,
			"partials reference the decision row seq in the payload")
	}

	finals := eventsNamed(evs, events.EventDecisionFinal)
	require.Len(t, finals, 1)
	finalPayload := finals[0].Data.(events.DecisionFinalPayload)
	assert.Equal(t, 2, finalPayload.DecisionSeq)
	assert.True(t, finalPayload.AnalysisComplete)
	assert.Equal(t, "Revenue grew 12% quarter over quarter.", finalPayload.FinalAnswer)

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusSuccess, finished[0].Data.(events.CompletionFinishedPayload).Status)
	assert.Less(t, eventIndex(evs, events.EventCompletionFinished), eventIndex(evs, events.EventSuggestStarted),
		"suggestions stream after the completion finished")

	suggested := eventsNamed(evs, events.EventSuggestPartial)
	require.Len(t, suggested, 1)
	draft := suggested[0].Data.(events.SuggestPartialPayload).Instruction
	assert.Equal(t, "instruction-1", draft.ID)
	assert.Equal(t, "Prefer quarterly granularity", draft.Text)
	done := eventsNamed(evs, events.EventSuggestFinished)
	require.Len(t, done, 1)
	assert.Len(t, done[0].Data.(events.SuggestFinishedPayload).Instructions, 1)

	assert.Equal(t, "Revenue grew 12% quarter over quarter.", session.completionContent["comp-system"])
	assert.Equal(t, "success", session.completionStatus["comp-system"])
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "success", session.finalizeCalls[0].status)
	assert.Equal(t, 1, session.finalizeCalls[0].loopIterations)
	assert.Greater(t, session.finalizeCalls[0].lastSeq, 2)

	decision, ok := session.decisionBySeq(2)
	require.True(t, ok)
	assert.True(t, decision.Final)
	assert.True(t, decision.AnalysisComplete)
	assert.GreaterOrEqual(t, session.transcripts, 1)

	require.Len(t, session.instructions, 1)
	assert.Equal(t, "intelligent", session.instructions[0].LoadMode)
	assert.Equal(t, "completion", session.instructions[0].AISource)

	require.Len(t, session.judgeScores, 2)
	phases := []interface{}{session.judgeScores[0]["phase"], session.judgeScores[1]["phase"]}
	assert.Contains(t, phases, "judge_early")
	assert.Contains(t, phases, "judge_late")
	assert.Equal(t, "Quarterly Revenue Growth", session.reportTitle)

	assert.Contains(t, session.snapshots, contexthub.SnapshotInitial)
	assert.Contains(t, session.snapshots, contexthub.SnapshotFinal)
	assert.Greater(t, session.usage["comp-system"].TotalTokens, 0)
}

func TestTurn_ToolThenAnswer(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{
			textScript(actionDecisionJSON),
			textScript(finalDecisionJSON),
		},
	}
	session := newFakeSession()
	registry := newDataRegistry(t, successExecutor("2 rows loaded"))
	rt := newTestRuntime(session, client, registry)

	evs := runTurn(rt, testTurnParams())

	started := eventIndex(evs, events.EventToolStarted)
	progress := eventIndex(evs, events.EventToolProgress)
	toolDone := eventIndex(evs, events.EventToolFinished)
	require.GreaterOrEqual(t, started, 0)
	require.Greater(t, progress, started)
	require.Greater(t, toolDone, progress)

	finishedPayload := evs[toolDone].Data.(events.ToolFinishedPayload)
	assert.Equal(t, "success", finishedPayload.Status)
	assert.Equal(t, "2 rows loaded", finishedPayload.ResultSummary)

	execs := session.toolExecRows()
	require.Len(t, execs, 1)
	assert.Equal(t, "create_data", execs[0].created.ToolName)
	require.NotNil(t, execs[0].finalized)
	assert.Equal(t, "success", execs[0].finalized.Status)
	assert.GreaterOrEqual(t, execs[0].finalized.DurationMs, 0)

	var toolBlock *blockRow
	for _, row := range session.blockRows() {
		if row.req.ToolExecutionID != "" {
			b := row
			toolBlock = &b
		}
	}
	require.NotNil(t, toolBlock)
	assert.Equal(t, "2 rows loaded", toolBlock.req.Content)
	assert.Equal(t, "success", toolBlock.req.Status)

	require.Equal(t, 2, client.PlannerCalls())
	second := client.PlannerInput(1)
	require.NotNil(t, second)
	assert.Contains(t, second.Messages[0].Content, "<observations>")
	assert.Contains(t, second.Messages[0].Content, "2 rows loaded")

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusSuccess, finished[0].Data.(events.CompletionFinishedPayload).Status)
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, 2, session.finalizeCalls[0].loopIterations)
}

func TestTurn_EventSeqsStrictlyIncrease(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{
			textScript(actionDecisionJSON),
			textScript(finalDecisionJSON),
		},
		suggestionScript: textScript(`{"instructions":[]}`),
	}
	session := newFakeSession()
	registry := newDataRegistry(t, successExecutor("2 rows loaded"))
	rt := newTestRuntime(session, client, registry)

	evs := runTurn(rt, testTurnParams())
	require.NotEmpty(t, evs)

	last := 0
	for _, ev := range evs {
		require.Greater(t, ev.Seq, last, "event %s reused or reordered seq %d", ev.Name, ev.Seq)
		last = ev.Seq
	}

	finals := eventsNamed(evs, events.EventDecisionFinal)
	require.Len(t, finals, 2)
	first := finals[0].Data.(events.DecisionFinalPayload)
	second := finals[1].Data.(events.DecisionFinalPayload)
	assert.Equal(t, 2, first.DecisionSeq)
	assert.Greater(t, second.DecisionSeq, first.DecisionSeq)
	assert.Less(t, second.DecisionSeq, finals[1].Seq,
		"the final event follows its decision row in seq order")
}

func TestTurn_InvalidPlannerRetriesExhausted(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(`{"plan_type":"bogus"}`)},
	}
	session := newFakeSession()
	rt := newTestRuntime(session, client, nil)

	evs := runTurn(rt, testTurnParams())

	retries := eventsNamed(evs, events.EventPlannerRetry)
	require.Len(t, retries, 3, "two retries allowed, third failure gives up")
	for i, ev := range retries {
		payload := ev.Data.(events.PlannerRetryPayload)
		assert.Equal(t, "invalid_output", payload.Reason)
		assert.Equal(t, i+1, payload.Attempt)
	}

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusSuccess, finished[0].Data.(events.CompletionFinishedPayload).Status)
	assert.Contains(t, session.completionContent["comp-system"], "could not produce a valid plan")

	assert.Equal(t, 3, client.PlannerCalls())
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "success", session.finalizeCalls[0].status)
	assert.Equal(t, 3, session.finalizeCalls[0].loopIterations)
	assert.Empty(t, eventsNamed(evs, events.EventSuggestStarted), "retry fallback skips suggestions")
}

func TestTurn_ToolFailureBreaker(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(actionDecisionJSON)},
	}
	session := newFakeSession()
	registry := newDataRegistry(t, func(ctx context.Context, rt tools.Runtime, args map[string]interface{}, emit tools.EmitFunc) (*tools.Result, error) {
		return nil, errors.New("warehouse unreachable")
	})
	rt := newTestRuntime(session, client, registry)

	evs := runTurn(rt, testTurnParams())

	toolFinished := eventsNamed(evs, events.EventToolFinished)
	require.Len(t, toolFinished, 3)
	for _, ev := range toolFinished {
		assert.Equal(t, "error", ev.Data.(events.ToolFinishedPayload).Status)
	}

	assert.Contains(t, session.completionContent["comp-system"], "failed repeatedly")
	assert.Equal(t, "success", session.completionStatus["comp-system"])
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "success", session.finalizeCalls[0].status)
	assert.Equal(t, 4, session.finalizeCalls[0].loopIterations, "the breaker iteration counts")
	assert.Equal(t, 3, client.PlannerCalls())
}

func TestTurn_RepeatSuccessBreaker(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(actionDecisionJSON)},
	}
	session := newFakeSession()
	registry := newDataRegistry(t, successExecutor("same result again"))
	rt := newTestRuntime(session, client, registry)

	evs := runTurn(rt, testTurnParams())

	toolFinished := eventsNamed(evs, events.EventToolFinished)
	require.Len(t, toolFinished, 2, "two identical successes trip the window")
	assert.Contains(t, session.completionContent["comp-system"], "repeated the same arguments")
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "success", session.finalizeCalls[0].status)
	assert.Equal(t, 2, client.PlannerCalls())
}

func TestTurn_StopRequestedMidTurn(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(actionDecisionJSON)},
	}
	session := newFakeSession()
	session.stopAfter = 2
	registry := newDataRegistry(t, successExecutor("partial result"))
	rt := newTestRuntime(session, client, registry)

	evs := runTurn(rt, testTurnParams())

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusStopped, finished[0].Data.(events.CompletionFinishedPayload).Status)

	require.Len(t, session.closeCalls, 1)
	assert.Equal(t, "stopped", session.closeCalls[0].status)
	assert.Equal(t, "stopped", session.completionStatus["comp-system"])
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "sigkill", session.finalizeCalls[0].status)
	assert.Empty(t, session.finalizeCalls[0].errorMessage)
	assert.Empty(t, eventsNamed(evs, events.EventSuggestStarted))
}

func TestTurn_WatcherStop(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(actionDecisionJSON)},
	}
	session := newFakeSession()
	watcher := &fakeWatcher{}
	registry := newDataRegistry(t, func(ctx context.Context, rt tools.Runtime, args map[string]interface{}, emit tools.EmitFunc) (*tools.Result, error) {
		watcher.stop()
		<-ctx.Done()
		return nil, ctx.Err()
	})
	rt := newTestRuntime(session, client, registry)
	rt.Watcher = watcher

	evs := runTurn(rt, testTurnParams())

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusStopped, finished[0].Data.(events.CompletionFinishedPayload).Status)
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "sigkill", session.finalizeCalls[0].status)

	assert.Equal(t, []string{"comp-system"}, watcher.watched)
	assert.Equal(t, []string{"comp-system"}, watcher.unwatched)
}

func TestTurn_StepLimitExhausted(t *testing.T) {
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{textScript(actionDecisionJSON)},
	}
	session := newFakeSession()
	registry := newDataRegistry(t, successExecutor("rows loaded"))
	rt := newTestRuntime(session, client, registry)
	rt.Loop.StepLimit = 2
	rt.Loop.RepeatSuccessWindow = 0

	evs := runTurn(rt, testTurnParams())

	toolFinished := eventsNamed(evs, events.EventToolFinished)
	require.Len(t, toolFinished, 2)

	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusSuccess, finished[0].Data.(events.CompletionFinishedPayload).Status)
	assert.Equal(t, "Pulling the data now.", session.completionContent["comp-system"],
		"the last assistant message becomes the answer")
	require.Len(t, session.finalizeCalls, 1)
	assert.Equal(t, "success", session.finalizeCalls[0].status)
}

func TestTurn_SuggestionsSkippedForWidgetEdits(t *testing.T) {
	client := &fakeLLM{
		plannerScripts:   [][]llm.Chunk{textScript(finalDecisionJSON)},
		suggestionScript: textScript(`{"instructions":[{"text":"never seen"}]}`),
	}
	session := newFakeSession()
	rt := newTestRuntime(session, client, nil)

	params := testTurnParams()
	params.Prompt.WidgetID = "widget-9"
	evs := runTurn(rt, params)

	assert.Empty(t, eventsNamed(evs, events.EventSuggestStarted))
	assert.Empty(t, session.instructions)
	finished := eventsNamed(evs, events.EventCompletionFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, events.StatusSuccess, finished[0].Data.(events.CompletionFinishedPayload).Status)
}

func TestTurn_StreamingArtifacts(t *testing.T) {
	view := map[string]interface{}{"chart": "bar"}
	exec := func(ctx context.Context, rt tools.Runtime, args map[string]interface{}, emit tools.EmitFunc) (*tools.Result, error) {
		emit(tools.ToolEvent{Type: tools.EventProgress, Payload: map[string]interface{}{
			"stage":           "data_model_type_determined",
			"data_model_type": "bar",
			"title":           "Revenue by month",
			"sql":             "select month, sum(amount) from orders group by 1",
		}})
		emit(tools.ToolEvent{Type: tools.EventProgress, Payload: map[string]interface{}{
			"stage":  "column_added",
			"column": map[string]interface{}{"generated_column_name": "month"},
		}})
		return &tools.Result{
			Observation: tools.Observation{Status: "success", Summary: "widget built"},
			Output: map[string]interface{}{
				"widget_data": map[string]interface{}{
					"code":       "df.groupby('month').sum()",
					"data_model": map[string]interface{}{"type": "bar"},
					"view":       view,
				},
			},
		}, nil
	}
	client := &fakeLLM{
		plannerScripts: [][]llm.Chunk{
			textScript(actionDecisionJSON),
			textScript(finalDecisionJSON),
		},
	}
	session := newFakeSession()
	rt := newTestRuntime(session, client, newDataRegistry(t, tools.ExecutorFunc(exec)))

	evs := runTurn(rt, testTurnParams())

	store := session.artifacts
	require.Len(t, store.widgets, 1)
	assert.Equal(t, "Revenue by month", store.widgets[0].Title)
	require.Len(t, store.queries, 1)
	assert.Contains(t, store.queries[0].SQL, "from orders")
	require.Len(t, store.steps, 1)
	require.Len(t, store.visualizations, 1)
	assert.Equal(t, "bar", store.visualizations[0].Kind)

	stepFinal, ok := store.stepFinals["step-1"]
	require.True(t, ok)
	assert.Equal(t, "success", stepFinal.Status)
	assert.Equal(t, "df.groupby('month').sum()", stepFinal.Code)
	assert.Equal(t, view, store.vizFinals["viz-1"])

	assert.GreaterOrEqual(t, eventIndex(evs, events.EventQueryCreated), 0)
	assert.GreaterOrEqual(t, eventIndex(evs, events.EventVisualizationCreated), 0)
	assert.GreaterOrEqual(t, len(eventsNamed(evs, events.EventBlockDeltaArtifact)), 2)
	updated := eventIndex(evs, events.EventVisualizationUpdated)
	toolDone := eventIndex(evs, events.EventToolFinished)
	require.GreaterOrEqual(t, updated, 0)
	assert.Less(t, updated, toolDone)

	finishedPayload := evs[toolDone].Data.(events.ToolFinishedPayload)
	assert.Equal(t, "widget-1", finishedPayload.CreatedWidgetID)
	assert.Equal(t, "step-1", finishedPayload.CreatedStepID)
	assert.Equal(t, []string{"viz-1"}, finishedPayload.CreatedVisualizationIDs)

	execs := session.toolExecRows()
	require.Len(t, execs, 1)
	require.NotNil(t, execs[0].finalized)
	assert.Equal(t, "widget-1", execs[0].finalized.CreatedWidgetID)
}

func TestLoopState_Breakers(t *testing.T) {
	t.Run("tool failure threshold", func(t *testing.T) {
		s := NewLoopState()
		assert.False(t, s.RecordToolFailure("create_data", 3))
		assert.False(t, s.RecordToolFailure("create_data", 3))
		assert.Empty(t, s.BreakerTripped())
		assert.True(t, s.RecordToolFailure("create_data", 3))
		assert.NotEmpty(t, s.BreakerTripped())
		assert.Contains(t, s.BreakerMessage(), "failed repeatedly")
	})

	t.Run("failures are counted per tool", func(t *testing.T) {
		s := NewLoopState()
		assert.False(t, s.RecordToolFailure("a", 2))
		assert.False(t, s.RecordToolFailure("b", 2))
		assert.Empty(t, s.BreakerTripped())
	})

	t.Run("repeat success window", func(t *testing.T) {
		s := NewLoopState()
		args := map[string]interface{}{"query": "select 1"}
		assert.False(t, s.RecordToolSuccess("create_data", args, 2))
		assert.True(t, s.RecordToolSuccess("create_data", args, 2))
		assert.Contains(t, s.BreakerMessage(), "repeated the same arguments")
	})

	t.Run("different arguments do not trip", func(t *testing.T) {
		s := NewLoopState()
		assert.False(t, s.RecordToolSuccess("create_data", map[string]interface{}{"q": "1"}, 2))
		assert.False(t, s.RecordToolSuccess("create_data", map[string]interface{}{"q": "2"}, 2))
	})

	t.Run("window below two never trips", func(t *testing.T) {
		s := NewLoopState()
		args := map[string]interface{}{"q": "1"}
		for i := 0; i < 5; i++ {
			assert.False(t, s.RecordToolSuccess("create_data", args, 0))
		}
	})

	t.Run("equal maps hash equally regardless of key order", func(t *testing.T) {
		var a, b map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(`{"x":1,"y":2}`), &a))
		require.NoError(t, json.Unmarshal([]byte(`{"y":2,"x":1}`), &b))
		s := NewLoopState()
		assert.False(t, s.RecordToolSuccess("t", a, 2))
		assert.True(t, s.RecordToolSuccess("t", b, 2))
	})
}
