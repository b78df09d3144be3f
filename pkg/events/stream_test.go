package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_SeqAllocation(t *testing.T) {
	s := NewStream("comp-1", "exec-1")

	t.Run("NextSeq is strictly increasing from 1", func(t *testing.T) {
		assert.Equal(t, 1, s.NextSeq())
		assert.Equal(t, 2, s.NextSeq())
		assert.Equal(t, 3, s.NextSeq())
		assert.Equal(t, 3, s.LastSeq())
	})
}

func TestStream_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("Emit allocates fresh seqs and tags events", func(t *testing.T) {
		s := NewStream("comp-1", "exec-1")

		seq1 := s.Emit(ctx, EventCompletionStarted, nil)
		seq2 := s.Emit(ctx, EventBlockUpsert, map[string]string{"id": "b1"})
		assert.Equal(t, 1, seq1)
		assert.Equal(t, 2, seq2)

		ev1 := <-s.Events()
		assert.Equal(t, EventCompletionStarted, ev1.Name)
		assert.Equal(t, "comp-1", ev1.CompletionID)
		assert.Equal(t, "exec-1", ev1.AgentExecutionID)
		assert.Equal(t, 1, ev1.Seq)

		ev2 := <-s.Events()
		assert.Equal(t, EventBlockUpsert, ev2.Name)
		assert.Equal(t, 2, ev2.Seq)
	})

	t.Run("row seq reservations never recycle into event envelopes", func(t *testing.T) {
		s := NewStream("comp-1", "exec-1")

		reserved := s.NextSeq() // seq handed to a decision row, not an event
		first := s.Emit(ctx, EventToolStarted, nil)
		second := s.Emit(ctx, EventDecisionFinal, nil)

		assert.Equal(t, 1, reserved)
		assert.Greater(t, first, reserved)
		assert.Greater(t, second, first)

		ev1 := <-s.Events()
		ev2 := <-s.Events()
		assert.Equal(t, first, ev1.Seq)
		assert.Equal(t, second, ev2.Seq)
	})

	t.Run("emit with cancelled context does not block", func(t *testing.T) {
		s := NewStream("comp-1", "exec-1")
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		// Fill the buffer so a send would block.
		for i := 0; i < DefaultQueueSize; i++ {
			s.Emit(ctx, "filler", nil)
		}
		s.Emit(cancelled, "dropped", nil) // must return immediately
	})
}

func TestStream_CloseAndDrain(t *testing.T) {
	ctx := context.Background()

	t.Run("Close is idempotent and signals Done", func(t *testing.T) {
		s := NewStream("comp-1", "exec-1")
		s.Close()
		s.Close()

		select {
		case <-s.Done():
		default:
			t.Fatal("Done should be closed")
		}
	})

	t.Run("Drain returns buffered tail events", func(t *testing.T) {
		s := NewStream("comp-1", "exec-1")
		for i := 0; i < 5; i++ {
			s.Emit(ctx, fmt.Sprintf("ev-%d", i), nil)
		}
		s.Close()

		tail := s.Drain()
		require.Len(t, tail, 5)
		for i, ev := range tail {
			assert.Equal(t, i+1, ev.Seq)
		}
		assert.Empty(t, s.Drain())
	})
}
