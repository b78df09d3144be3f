package events

import (
	"context"
	"time"
)

// ThrottledTextStreamer batches planner token deltas for one decision block
// into decision.partial events. An emit happens when either accumulated
// delta crosses the character threshold or enough time has passed since the
// last emit. Every event takes a fresh envelope seq; the pinned decision seq
// travels in the payload so clients can route deltas to the decision row.
type ThrottledTextStreamer struct {
	stream      *Stream
	decisionSeq int
	blockID     string

	minChars int
	interval time.Duration
	now      func() time.Time

	lastReasoning string
	lastContent   string
	lastEmit      time.Time
	emitted       int
}

// NewThrottledTextStreamer creates a streamer targeting the given block and
// pinned decision seq.
func NewThrottledTextStreamer(stream *Stream, blockID string, decisionSeq int, minChars int, interval time.Duration) *ThrottledTextStreamer {
	if minChars <= 0 {
		minChars = 24
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &ThrottledTextStreamer{
		stream:      stream,
		decisionSeq: decisionSeq,
		blockID:     blockID,
		minChars:    minChars,
		interval:    interval,
		now:         time.Now,
	}
}

// SetBlock retargets the streamer when the pre-created block failed and a
// replacement had to be made. Emitted trackers carry over — clients already
// received the earlier deltas.
func (t *ThrottledTextStreamer) SetBlock(blockID string, decisionSeq int) {
	t.blockID = blockID
	t.decisionSeq = decisionSeq
}

// Update observes the latest accumulated reasoning and content and emits a
// decision.partial carrying only the growth since the last emit when the
// throttle allows. Events with both deltas empty are suppressed.
func (t *ThrottledTextStreamer) Update(ctx context.Context, planType, reasoning, content string) {
	rDelta := growth(t.lastReasoning, reasoning)
	cDelta := growth(t.lastContent, content)
	if rDelta == "" && cDelta == "" {
		return
	}

	elapsed := t.now().Sub(t.lastEmit)
	if len(rDelta)+len(cDelta) < t.minChars && elapsed < t.interval && !t.lastEmit.IsZero() {
		return
	}

	t.emit(ctx, planType, rDelta, cDelta)
	t.lastReasoning = reasoning
	t.lastContent = content
}

// Complete flushes any pending tail delta.
func (t *ThrottledTextStreamer) Complete(ctx context.Context, planType, reasoning, content string) {
	rDelta := growth(t.lastReasoning, reasoning)
	cDelta := growth(t.lastContent, content)
	if rDelta == "" && cDelta == "" {
		return
	}
	t.emit(ctx, planType, rDelta, cDelta)
	t.lastReasoning = reasoning
	t.lastContent = content
}

// Emitted reports how many decision.partial events have been sent.
func (t *ThrottledTextStreamer) Emitted() int { return t.emitted }

func (t *ThrottledTextStreamer) emit(ctx context.Context, planType, rDelta, cDelta string) {
	t.stream.Emit(ctx, EventDecisionPartial, DecisionPartialPayload{
		DecisionSeq:    t.decisionSeq,
		PlanType:       planType,
		ReasoningDelta: rDelta,
		AssistantDelta: cDelta,
	})
	t.lastEmit = t.now()
	t.emitted++
}

// growth returns the suffix of next beyond prev. A rewritten prefix (rare:
// the planner restarted a field) re-sends the whole string.
func growth(prev, next string) string {
	if len(next) <= len(prev) {
		return ""
	}
	if next[:len(prev)] == prev {
		return next[len(prev):]
	}
	return next
}
