package llm

import (
	"context"
	"sync"
)

// StubClient replays scripted chunk sequences, one per Generate call.
// Used by loop and driver tests; the real backends are wired in main.
// Safe for concurrent callers: detached judge and title tasks may call
// Generate while the loop streams a planner decision.
type StubClient struct {
	// Scripts holds one chunk slice per expected Generate call, consumed in
	// order. Extra calls replay the last script.
	Scripts [][]Chunk

	mu    sync.Mutex
	calls int
}

// Generate replays the next script on a buffered channel.
func (s *StubClient) Generate(ctx context.Context, _ *GenerateInput) (<-chan Chunk, error) {
	s.mu.Lock()
	script := []Chunk{}
	if len(s.Scripts) > 0 {
		idx := s.calls
		if idx >= len(s.Scripts) {
			idx = len(s.Scripts) - 1
		}
		script = s.Scripts[idx]
	}
	s.calls++
	s.mu.Unlock()

	ch := make(chan Chunk, len(script))
	go func() {
		defer close(ch)
		for _, c := range script {
			select {
			case ch <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Calls reports how many Generate calls have been made.
func (s *StubClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
