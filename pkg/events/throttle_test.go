package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreamer(t *testing.T) (*ThrottledTextStreamer, *Stream, *time.Time) {
	t.Helper()
	stream := NewStream("comp-1", "exec-1")
	streamer := NewThrottledTextStreamer(stream, "block-1", stream.NextSeq(), 10, 100*time.Millisecond)

	now := time.Unix(1700000000, 0)
	streamer.now = func() time.Time { return now }
	return streamer, stream, &now
}

func partialPayload(t *testing.T, ev Event) DecisionPartialPayload {
	t.Helper()
	payload, ok := ev.Data.(DecisionPartialPayload)
	require.True(t, ok)
	return payload
}

func TestThrottledTextStreamer_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("first update always emits", func(t *testing.T) {
		streamer, stream, _ := newTestStreamer(t)

		streamer.Update(ctx, "research", "r", "")
		assert.Equal(t, 1, streamer.Emitted())

		ev := <-stream.Events()
		assert.Equal(t, EventDecisionPartial, ev.Name)
		assert.Equal(t, 2, ev.Seq, "envelope seq is fresh, not the decision's")
		payload := partialPayload(t, ev)
		assert.Equal(t, 1, payload.DecisionSeq)
		assert.Equal(t, "research", payload.PlanType)
		assert.Equal(t, "r", payload.ReasoningDelta)
	})

	t.Run("small growth inside the interval is suppressed", func(t *testing.T) {
		streamer, _, _ := newTestStreamer(t)

		streamer.Update(ctx, "research", "reasoning start", "")
		streamer.Update(ctx, "research", "reasoning start.", "")
		assert.Equal(t, 1, streamer.Emitted())
	})

	t.Run("threshold crossing emits the accumulated delta", func(t *testing.T) {
		streamer, stream, _ := newTestStreamer(t)

		streamer.Update(ctx, "research", "base", "")
		<-stream.Events()

		streamer.Update(ctx, "research", "base.", "")
		streamer.Update(ctx, "research", "base. and then a lot more text", "")
		require.Equal(t, 2, streamer.Emitted())

		payload := partialPayload(t, <-stream.Events())
		assert.Equal(t, ". and then a lot more text", payload.ReasoningDelta)
	})

	t.Run("interval elapse emits even a small delta", func(t *testing.T) {
		streamer, stream, now := newTestStreamer(t)

		streamer.Update(ctx, "research", "base", "")
		<-stream.Events()

		*now = now.Add(150 * time.Millisecond)
		streamer.Update(ctx, "research", "base!", "")
		require.Equal(t, 2, streamer.Emitted())

		payload := partialPayload(t, <-stream.Events())
		assert.Equal(t, "!", payload.ReasoningDelta)
	})

	t.Run("no growth emits nothing", func(t *testing.T) {
		streamer, _, _ := newTestStreamer(t)

		streamer.Update(ctx, "research", "same", "")
		streamer.Update(ctx, "research", "same", "")
		streamer.Update(ctx, "research", "sam", "")
		assert.Equal(t, 1, streamer.Emitted())
	})
}

func TestThrottledTextStreamer_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("flushes the pending tail", func(t *testing.T) {
		streamer, stream, _ := newTestStreamer(t)

		streamer.Update(ctx, "action", "hello there planner", "")
		<-stream.Events()

		streamer.Update(ctx, "action", "hello there planner.", "answer")
		require.Equal(t, 1, streamer.Emitted())

		streamer.Complete(ctx, "action", "hello there planner.", "answer")
		require.Equal(t, 2, streamer.Emitted())

		payload := partialPayload(t, <-stream.Events())
		assert.Equal(t, ".", payload.ReasoningDelta)
		assert.Equal(t, "answer", payload.AssistantDelta)
	})

	t.Run("nothing pending is a no-op", func(t *testing.T) {
		streamer, _, _ := newTestStreamer(t)

		streamer.Update(ctx, "action", "full reasoning", "full answer")
		streamer.Complete(ctx, "action", "full reasoning", "full answer")
		assert.Equal(t, 1, streamer.Emitted())
	})
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, " world", growth("hello", "hello world"))
	assert.Equal(t, "", growth("hello", "hello"))
	assert.Equal(t, "", growth("hello", "hel"))
	assert.Equal(t, "abcdef", growth("xyz", "abcdef"), "rewritten prefix re-sends the whole string")
	assert.Equal(t, "fresh", growth("", "fresh"))
}
