package tools

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/datalens-ai/datalens/pkg/contexthub"
)

// eventQueueSize bounds the in-flight events between an executor and the
// runner's drain loop.
const eventQueueSize = 64

// RetryPolicy controls transient-failure retries.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	Multiplier  float64
	Jitter      time.Duration
}

// TimeoutPolicy bounds one tool attempt: Start caps time to the first
// emitted event, Idle caps gaps between events, Hard is the absolute cap.
type TimeoutPolicy struct {
	Start time.Duration
	Idle  time.Duration
	Hard  time.Duration
}

// DefaultRetryPolicy is used when a zero policy is supplied.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 2,
	Backoff:     500 * time.Millisecond,
	Multiplier:  2.0,
	Jitter:      200 * time.Millisecond,
}

// DefaultTimeoutPolicy is used when a zero policy is supplied.
var DefaultTimeoutPolicy = TimeoutPolicy{
	Start: 5 * time.Second,
	Idle:  30 * time.Second,
	Hard:  120 * time.Second,
}

// Runtime carries per-invocation collaborator state into executors.
type Runtime struct {
	ReportID         string
	CompletionID     string
	AgentExecutionID string
	UserID           string
	View             contexthub.View
}

// Invocation names one tool call the planner requested.
type Invocation struct {
	Tool         string
	Action       string
	Arguments    map[string]interface{}
	PlanType     string
	Capabilities []string
	Attempt      int
}

// Runner executes tools under retry and timeout policies.
type Runner struct {
	registry *Registry
	retry    RetryPolicy
	timeouts TimeoutPolicy
}

// NewRunner creates a runner over the registry. Zero policies fall back to
// the defaults.
func NewRunner(registry *Registry, retry RetryPolicy, timeouts TimeoutPolicy) *Runner {
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy
	}
	if timeouts.Hard <= 0 {
		timeouts = DefaultTimeoutPolicy
	}
	return &Runner{registry: registry, retry: retry, timeouts: timeouts}
}

// Run resolves, validates, and executes one invocation, forwarding streamed
// events to sink in order. The returned error is non-nil only for
// cancellation; every tool failure is normalized into the Result's
// observation so the planner can react to it.
func (r *Runner) Run(ctx context.Context, rt Runtime, inv Invocation, sink func(ToolEvent)) (*Result, error) {
	reg, ok := r.registry.lookup(inv.Tool)
	if !ok || !allowed(reg.desc, inv.PlanType, inv.Capabilities) {
		return errorResult("resolve_error", fmt.Sprintf("tool %q is not available", inv.Tool)), nil
	}
	if err := reg.validateArgs(inv.Arguments); err != nil {
		var verr *ValidationError
		errors.As(err, &verr)
		return errorResult(verr.Code, verr.Message), nil
	}

	backoff := r.retry.Backoff
	var lastErr error
	for attempt := 1; attempt <= r.retry.MaxAttempts; attempt++ {
		inv.Attempt = attempt
		result, err := r.runOnce(ctx, reg, rt, inv, sink)
		if err == nil {
			return normalize(result), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			return errorResult(verr.Code, verr.Message), nil
		}
		lastErr = err
		if attempt < r.retry.MaxAttempts {
			if err := sleep(ctx, withJitter(backoff, r.retry.Jitter)); err != nil {
				return nil, err
			}
			backoff = time.Duration(float64(backoff) * r.retry.Multiplier)
		}
	}
	return errorResult("execution_error", lastErr.Error()), nil
}

func (r *Runner) runOnce(ctx context.Context, reg *registration, rt Runtime, inv Invocation, sink func(ToolEvent)) (*Result, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.timeouts.Hard)
	defer cancel()

	events := make(chan ToolEvent, eventQueueSize)
	emit := func(ev ToolEvent) {
		select {
		case events <- ev:
		case <-attemptCtx.Done():
		}
	}

	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- outcome{err: fmt.Errorf("tool %s panicked: %v", inv.Tool, p)}
			}
		}()
		result, err := reg.exec.Execute(attemptCtx, rt, inv.Arguments, emit)
		done <- outcome{result: result, err: err}
	}()

	// The watchdog starts on the start timeout and resets to the idle
	// timeout after every observed event.
	watchdog := time.NewTimer(r.timeouts.Start)
	defer watchdog.Stop()
	sawEvent := false

	for {
		select {
		case ev := <-events:
			sink(ev)
			sawEvent = true
			if !watchdog.Stop() {
				select {
				case <-watchdog.C:
				default:
				}
			}
			watchdog.Reset(r.timeouts.Idle)
		case <-watchdog.C:
			cancel()
			if !sawEvent {
				return nil, fmt.Errorf("tool %s stalled (no output within start timeout %s)", inv.Tool, r.timeouts.Start)
			}
			return nil, fmt.Errorf("tool %s stalled (no progress within idle timeout %s)", inv.Tool, r.timeouts.Idle)
		case <-ctx.Done():
			return nil, ctx.Err()
		case o := <-done:
			for {
				select {
				case ev := <-events:
					sink(ev)
					continue
				default:
				}
				break
			}
			if o.err == nil && attemptCtx.Err() != nil && ctx.Err() == nil {
				return nil, fmt.Errorf("tool %s exceeded hard timeout %s", inv.Tool, r.timeouts.Hard)
			}
			return o.result, o.err
		}
	}
}

// normalize fills defaults so callers always see a well-formed observation.
func normalize(result *Result) *Result {
	if result == nil {
		result = &Result{}
	}
	if result.Observation.Status == "" {
		result.Observation.Status = "success"
	}
	if result.Observation.Summary == "" {
		if result.Observation.Status == "success" {
			result.Observation.Summary = "completed"
		} else {
			result.Observation.Summary = "failed"
		}
	}
	return result
}

func errorResult(code, message string) *Result {
	return &Result{Observation: Observation{
		Status:    "error",
		ErrorCode: code,
		Summary:   message,
	}}
}

func withJitter(d, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return d
	}
	offset := time.Duration(rand.Int63n(int64(2*jitter))) - jitter
	if d+offset < 0 {
		return 0
	}
	return d + offset
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
