package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/datalens-ai/datalens/pkg/llm"
)

// Driver consumes a streaming planner LLM and yields token, partial, and
// final decision events. One Stream call produces at most one FinalEvent;
// when ctx is cancelled mid-stream the output channel closes without one.
type Driver struct {
	client llm.Client
}

// NewDriver creates a planner driver over the given LLM client.
func NewDriver(client llm.Client) *Driver {
	return &Driver{client: client}
}

// Stream starts one planner call. The returned channel closes when the call
// ends (final decision emitted, error, or cancellation).
func (d *Driver) Stream(ctx context.Context, input *llm.GenerateInput) (<-chan Event, error) {
	llmCtx, cancel := context.WithCancel(ctx)

	chunks, err := d.client.Generate(llmCtx, input)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("planner generate failed: %w", err)
	}

	out := make(chan Event, 16)
	go func() {
		defer close(out)
		defer cancel()

		var buf strings.Builder
		var lastPartial *Decision

		for chunk := range chunks {
			select {
			case <-ctx.Done():
				return
			default:
			}

			switch c := chunk.(type) {
			case *llm.TextChunk:
				if c.Content == "" {
					continue
				}
				buf.WriteString(c.Content)
				if !send(ctx, out, &TokensEvent{Delta: c.Content}) {
					return
				}
				if partial := extractPartial(buf.String()); partial != nil && partialGrew(lastPartial, partial) {
					lastPartial = partial
					if !send(ctx, out, &PartialEvent{Decision: partial}) {
						return
					}
				}
			case *llm.ReasoningChunk:
				// Planner backends emit the decision as structured JSON text;
				// native reasoning channels are surfaced as raw tokens only.
				if c.Content != "" && !send(ctx, out, &TokensEvent{Delta: c.Content}) {
					return
				}
			case *llm.ErrorChunk:
				send(ctx, out, &FinalEvent{Decision: &Decision{
					Err: &DecisionError{
						Code:    ErrCodeValidation,
						Message: fmt.Sprintf("planner stream failed: %s (code: %s)", c.Message, c.Code),
					},
				}})
				return
			case *llm.UsageChunk:
				// Accounting only; recorded by the loop via the usage snapshot.
			}
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		decision, derr := ValidateDecision(buf.String())
		if derr != nil {
			send(ctx, out, &FinalEvent{Decision: &Decision{Err: derr}})
			return
		}
		send(ctx, out, &FinalEvent{Decision: decision})
	}()

	return out, nil
}

func send(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// partialGrew reports whether the new partial carries more visible content
// than the previous one, suppressing no-op partial events.
func partialGrew(prev, next *Decision) bool {
	if next.ReasoningMessage == "" && next.AssistantMessage == "" && next.PlanType == "" {
		return false
	}
	if prev == nil {
		return true
	}
	return len(next.ReasoningMessage) > len(prev.ReasoningMessage) ||
		len(next.AssistantMessage) > len(prev.AssistantMessage) ||
		next.PlanType != prev.PlanType ||
		next.AnalysisComplete != prev.AnalysisComplete ||
		(next.Action != nil) != (prev.Action != nil)
}
