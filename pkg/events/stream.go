package events

import (
	"context"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the buffer of a turn's event queue. Puts block once
// the buffer fills, which back-pressures the loop onto the consumer.
const DefaultQueueSize = 256

// Stream is the per-agent-execution event queue. One loop task produces;
// one transport reader consumes. NextSeq also serves as the allocator for
// the decision seqs persisted on rows; every emitted event takes its own
// fresh seq.
type Stream struct {
	completionID     string
	agentExecutionID string

	seq atomic.Int64

	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewStream creates a stream for one agent execution.
func NewStream(completionID, agentExecutionID string) *Stream {
	return &Stream{
		completionID:     completionID,
		agentExecutionID: agentExecutionID,
		ch:               make(chan Event, DefaultQueueSize),
		done:             make(chan struct{}),
	}
}

// NextSeq allocates the next strictly increasing sequence number.
func (s *Stream) NextSeq() int {
	return int(s.seq.Add(1))
}

// LastSeq returns the most recently allocated sequence number.
func (s *Stream) LastSeq() int {
	return int(s.seq.Load())
}

// Emit allocates a fresh seq and enqueues the event. Blocks when the queue
// is full; returns early if ctx is cancelled or the stream is closed.
// Emitting on a closed stream is a no-op so late best-effort emitters never
// panic.
func (s *Stream) Emit(ctx context.Context, name string, data interface{}) int {
	seq := s.NextSeq()
	ev := Event{
		Name:             name,
		CompletionID:     s.completionID,
		AgentExecutionID: s.agentExecutionID,
		Seq:              seq,
		Data:             data,
	}
	select {
	case <-s.done:
	case <-ctx.Done():
	case s.ch <- ev:
	}
	return seq
}

// Events returns the consumer side of the queue. After Done is signalled,
// consumers should drain Events non-blocking to pick up buffered tail
// events.
func (s *Stream) Events() <-chan Event {
	return s.ch
}

// Done is closed when the turn ends and no further events will be enqueued.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Close terminates the stream. Safe to call multiple times.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Drain consumes and returns any buffered events without blocking.
func (s *Stream) Drain() []Event {
	var out []Event
	for {
		select {
		case ev := <-s.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}
