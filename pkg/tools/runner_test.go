package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicies() (RetryPolicy, TimeoutPolicy) {
	return RetryPolicy{MaxAttempts: 2, Backoff: time.Millisecond, Multiplier: 1, Jitter: 0},
		TimeoutPolicy{Start: time.Second, Idle: time.Second, Hard: 5 * time.Second}
}

func runnerWith(t *testing.T, desc Descriptor, exec Executor) *Runner {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, registry.Register(desc, exec))
	retry, timeouts := fastPolicies()
	return NewRunner(registry, retry, timeouts)
}

func collectSink() (func(ToolEvent), *[]ToolEvent) {
	var events []ToolEvent
	return func(ev ToolEvent) { events = append(events, ev) }, &events
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("success forwards events in order and normalizes the result", func(t *testing.T) {
		runner := runnerWith(t, Descriptor{Name: "probe"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				emit(ToolEvent{Type: EventProgress, Payload: map[string]interface{}{"stage": "one"}})
				emit(ToolEvent{Type: EventStdout, Payload: map[string]interface{}{"line": "working"}})
				return &Result{Output: map[string]interface{}{"rows": 3}}, nil
			}))
		sink, events := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "probe"}, sink)
		require.NoError(t, err)
		assert.Equal(t, "success", result.Observation.Status)
		assert.Equal(t, "completed", result.Observation.Summary)
		assert.Equal(t, 3, result.Output["rows"])

		require.Len(t, *events, 2)
		assert.Equal(t, EventProgress, (*events)[0].Type)
		assert.Equal(t, EventStdout, (*events)[1].Type)
	})

	t.Run("unknown tool becomes a resolve_error observation", func(t *testing.T) {
		runner := NewRunner(NewRegistry(), RetryPolicy{MaxAttempts: 1}, TimeoutPolicy{Hard: time.Second})
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "ghost"}, sink)
		require.NoError(t, err)
		assert.Equal(t, "error", result.Observation.Status)
		assert.Equal(t, "resolve_error", result.Observation.ErrorCode)
	})

	t.Run("argument schema failure is not retried", func(t *testing.T) {
		calls := 0
		runner := runnerWith(t, Descriptor{
			Name: "strict",
			ArgsSchema: json.RawMessage(`{
				"type": "object",
				"properties": {"query": {"type": "string"}},
				"required": ["query"]
			}`),
		}, ExecutorFunc(func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
			calls++
			return &Result{}, nil
		}))
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "strict", Arguments: map[string]interface{}{}}, sink)
		require.NoError(t, err)
		assert.Equal(t, "error", result.Observation.Status)
		assert.Equal(t, "input_validation_error", result.Observation.ErrorCode)
		assert.Equal(t, 0, calls)
	})

	t.Run("transient failure retries then succeeds", func(t *testing.T) {
		calls := 0
		runner := runnerWith(t, Descriptor{Name: "flaky"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("connection reset")
				}
				return &Result{Observation: Observation{Summary: "recovered"}}, nil
			}))
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "flaky"}, sink)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "success", result.Observation.Status)
		assert.Equal(t, "recovered", result.Observation.Summary)
	})

	t.Run("exhausted retries become an execution_error observation", func(t *testing.T) {
		calls := 0
		runner := runnerWith(t, Descriptor{Name: "broken"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				calls++
				return nil, errors.New("backend unavailable")
			}))
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "broken"}, sink)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "error", result.Observation.Status)
		assert.Equal(t, "execution_error", result.Observation.ErrorCode)
		assert.Contains(t, result.Observation.Summary, "backend unavailable")
	})

	t.Run("validation error from the executor is not retried", func(t *testing.T) {
		calls := 0
		runner := runnerWith(t, Descriptor{Name: "picky"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				calls++
				return nil, NewValidationError("bad_column", "column does not exist")
			}))
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "picky"}, sink)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "bad_column", result.Observation.ErrorCode)
	})

	t.Run("panicking executor is contained and retried", func(t *testing.T) {
		calls := 0
		runner := runnerWith(t, Descriptor{Name: "crashy"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				calls++
				panic("boom")
			}))
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "crashy"}, sink)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, "execution_error", result.Observation.ErrorCode)
		assert.Contains(t, result.Observation.Summary, "panicked")
	})

	t.Run("cancellation returns the context error", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		runner := runnerWith(t, Descriptor{Name: "slow"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				cancel()
				<-ctx.Done()
				return nil, ctx.Err()
			}))
		sink, _ := collectSink()

		result, err := runner.Run(cancelCtx, Runtime{}, Invocation{Tool: "slow"}, sink)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("silent executor trips the start watchdog", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(Descriptor{Name: "stuck"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})))
		runner := NewRunner(registry,
			RetryPolicy{MaxAttempts: 1, Backoff: time.Millisecond},
			TimeoutPolicy{Start: 30 * time.Millisecond, Idle: 5 * time.Second, Hard: 5 * time.Second})
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "stuck"}, sink)
		require.NoError(t, err)
		assert.Equal(t, "error", result.Observation.Status)
		assert.Equal(t, "execution_error", result.Observation.ErrorCode)
		assert.Contains(t, result.Observation.Summary, "start timeout")
	})

	t.Run("executor that goes quiet trips the idle watchdog", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(Descriptor{Name: "quiet"}, ExecutorFunc(
			func(ctx context.Context, rt Runtime, args map[string]interface{}, emit EmitFunc) (*Result, error) {
				emit(ToolEvent{Type: EventProgress})
				<-ctx.Done()
				return nil, ctx.Err()
			})))
		runner := NewRunner(registry,
			RetryPolicy{MaxAttempts: 1, Backoff: time.Millisecond},
			TimeoutPolicy{Start: 5 * time.Second, Idle: 30 * time.Millisecond, Hard: 5 * time.Second})
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "quiet"}, sink)
		require.NoError(t, err)
		assert.Equal(t, "error", result.Observation.Status)
		assert.Contains(t, result.Observation.Summary, "idle timeout")
	})

	t.Run("plan type mismatch resolves to an error observation", func(t *testing.T) {
		runner := runnerWith(t, Descriptor{Name: "act", PlanTypes: []string{"action"}}, noopExecutor())
		sink, _ := collectSink()

		result, err := runner.Run(ctx, Runtime{}, Invocation{Tool: "act", PlanType: "research"}, sink)
		require.NoError(t, err)
		assert.Equal(t, "resolve_error", result.Observation.ErrorCode)
	})
}
