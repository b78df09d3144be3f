package agent

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Break reasons produced by the circuit breakers.
const (
	breakToolFailures  = "tool_failures"
	breakRepeatSuccess = "repeat_success"
)

// LoopState carries the mutable state of one turn across loop iterations.
// Mutated only by the loop task.
type LoopState struct {
	LoopIndex         int
	InvalidRetryCount int

	failedToolCount   map[string]int
	successSignatures []string

	AnalysisDone    bool
	FinishedEmitted bool

	DecisionSeq    int
	CurrentBlockID string

	breakReason string
	brokenTool  string
}

// NewLoopState creates the state for a fresh turn.
func NewLoopState() *LoopState {
	return &LoopState{failedToolCount: make(map[string]int)}
}

// RecordToolFailure counts a failed tool call. Trips the failure breaker
// when the tool has failed maxFailures times this turn.
func (s *LoopState) RecordToolFailure(toolName string, maxFailures int) bool {
	s.failedToolCount[toolName]++
	if s.failedToolCount[toolName] >= maxFailures {
		s.breakReason = breakToolFailures
		s.brokenTool = toolName
		return true
	}
	return false
}

// RecordToolSuccess records a successful tool signature. Trips the
// repeat-success breaker when the trailing window signatures are identical.
func (s *LoopState) RecordToolSuccess(toolName string, args map[string]interface{}, window int) bool {
	s.successSignatures = append(s.successSignatures, signature(toolName, args))
	if window < 2 || len(s.successSignatures) < window {
		return false
	}
	tail := s.successSignatures[len(s.successSignatures)-window:]
	for _, sig := range tail[1:] {
		if sig != tail[0] {
			return false
		}
	}
	s.breakReason = breakRepeatSuccess
	s.brokenTool = toolName
	return true
}

// BreakerTripped returns the pending break reason, or empty.
func (s *LoopState) BreakerTripped() string {
	return s.breakReason
}

// BreakerMessage renders the synthetic final answer for a tripped breaker.
func (s *LoopState) BreakerMessage() string {
	switch s.breakReason {
	case breakToolFailures:
		return fmt.Sprintf("Stopping: the %s tool failed repeatedly and further attempts are unlikely to succeed.", s.brokenTool)
	case breakRepeatSuccess:
		return fmt.Sprintf("Stopping: the last %s calls repeated the same arguments, so no new information is being produced.", s.brokenTool)
	default:
		return ""
	}
}

// signature hashes a tool invocation for the repeat-success breaker.
// json.Marshal sorts map keys, so equal argument maps hash equally.
func signature(toolName string, args map[string]interface{}) string {
	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", args))
	}
	sum := sha256.Sum256(raw)
	return toolName + ":" + hex.EncodeToString(sum[:8])
}
