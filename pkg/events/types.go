// Package events provides the per-turn ordered event stream consumed by the
// SSE transport, plus the throttled token-delta streamer used while planner
// decisions are streaming.
//
// Ordering contract: every event emitted for one agent execution carries a
// seq allocated from that execution's Stream. Seqs are strictly monotonic
// and mirror causal order; consumers observe events in increasing seq order
// because the loop task is the only producer and the queue is FIFO.
package events

// Event names delivered over SSE. Names are stable API; payload shapes live
// in payloads.go.
const (
	// Completion lifecycle
	EventCompletionStarted  = "completion.started"
	EventCompletionFinished = "completion.finished"
	EventCompletionError    = "completion.error"

	// Block persistence mirror
	EventBlockUpsert        = "block.upsert"
	EventBlockDeltaArtifact = "block.delta.artifact"

	// Planner decision stream
	EventDecisionPartial = "decision.partial"
	EventDecisionFinal   = "decision.final"
	EventPlannerRetry    = "planner.retry"

	// Tool lifecycle
	EventToolStarted  = "tool.started"
	EventToolProgress = "tool.progress"
	EventToolPartial  = "tool.partial"
	EventToolStdout   = "tool.stdout"
	EventToolError    = "tool.error"
	EventToolFinished = "tool.finished"

	// Artifact lifecycle
	EventQueryCreated         = "query.created"
	EventVisualizationCreated = "visualization.created"
	EventVisualizationUpdated = "visualization.updated"

	// Post-analysis instruction suggestions
	EventSuggestStarted  = "instructions.suggest.started"
	EventSuggestPartial  = "instructions.suggest.partial"
	EventSuggestFinished = "instructions.suggest.finished"
)

// Completion terminal statuses carried by completion.finished.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusStopped = "stopped"
)

// Event is the envelope placed on a turn's event queue. Data is one of the
// typed payload structs from payloads.go.
type Event struct {
	Name             string      `json:"event"`
	CompletionID     string      `json:"completion_id"`
	AgentExecutionID string      `json:"agent_execution_id,omitempty"`
	Seq              int         `json:"seq"`
	Data             interface{} `json:"data,omitempty"`
}
