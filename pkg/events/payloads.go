package events

// CompletionFinishedPayload is the payload for completion.finished events.
// Exactly one is emitted per turn.
type CompletionFinishedPayload struct {
	Status string `json:"status"` // success, error, stopped
	Error  string `json:"error,omitempty"`
}

// CompletionErrorPayload is the payload for completion.error events.
type CompletionErrorPayload struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

// BlockUpsertPayload is the payload for block.upsert events — a full
// snapshot of the persisted block row.
type BlockUpsertPayload struct {
	Block BlockSnapshot `json:"block"`
}

// BlockSnapshot mirrors the persisted completion block.
type BlockSnapshot struct {
	ID              string `json:"id"`
	CompletionID    string `json:"completion_id"`
	PlanDecisionID  string `json:"plan_decision_id,omitempty"`
	ToolExecutionID string `json:"tool_execution_id,omitempty"`
	Seq             int    `json:"seq"`
	BlockIndex      int    `json:"block_index"`
	Content         string `json:"content"`
	Reasoning       string `json:"reasoning"`
	Status          string `json:"status"`
}

// BlockDeltaArtifactPayload is the payload for block.delta.artifact events,
// emitted when a streaming tool mutates an artifact's data model.
type BlockDeltaArtifactPayload struct {
	BlockID         string         `json:"block_id"`
	WidgetID        string         `json:"widget_id,omitempty"`
	StepID          string         `json:"step_id,omitempty"`
	VisualizationID string         `json:"visualization_id,omitempty"`
	ChangedFields   []string       `json:"changed_fields"`
	Change          map[string]any `json:"change,omitempty"`
}

// DecisionPartialPayload is the payload for decision.partial events. Carries
// incremental deltas, not accumulated text; clients concatenate locally.
// DecisionSeq names the decision row the deltas belong to.
type DecisionPartialPayload struct {
	DecisionSeq    int    `json:"decision_seq"`
	PlanType       string `json:"plan_type,omitempty"`
	ReasoningDelta string `json:"reasoning,omitempty"`
	AssistantDelta string `json:"assistant,omitempty"`
	ActionName     string `json:"action,omitempty"`
}

// DecisionFinalPayload is the payload for decision.final events.
type DecisionFinalPayload struct {
	DecisionSeq      int            `json:"decision_seq"`
	PlanType         string         `json:"plan_type"`
	AnalysisComplete bool           `json:"analysis_complete"`
	FinalAnswer      string         `json:"final_answer,omitempty"`
	ActionName       string         `json:"action,omitempty"`
	Metrics          map[string]any `json:"metrics,omitempty"`
}

// PlannerRetryPayload is the payload for planner.retry events.
type PlannerRetryPayload struct {
	Reason  string `json:"reason"`
	Attempt int    `json:"attempt"`
}

// ToolStartedPayload is the payload for tool.started events.
type ToolStartedPayload struct {
	ToolExecutionID string         `json:"tool_execution_id"`
	ToolName        string         `json:"tool_name"`
	Arguments       map[string]any `json:"arguments,omitempty"`
}

// ToolEventPayload is the payload for tool.progress, tool.partial,
// tool.stdout, and tool.error events forwarded from a running tool.
type ToolEventPayload struct {
	ToolExecutionID string         `json:"tool_execution_id"`
	ToolName        string         `json:"tool_name"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// ToolFinishedPayload is the payload for tool.finished events.
type ToolFinishedPayload struct {
	ToolExecutionID         string         `json:"tool_execution_id"`
	ToolName                string         `json:"tool_name"`
	Status                  string         `json:"status"` // success, error
	ResultSummary           string         `json:"result_summary,omitempty"`
	ResultJSON              map[string]any `json:"result_json,omitempty"`
	DurationMs              int            `json:"duration_ms"`
	CreatedWidgetID         string         `json:"created_widget_id,omitempty"`
	CreatedStepID           string         `json:"created_step_id,omitempty"`
	CreatedVisualizationIDs []string       `json:"created_visualization_ids,omitempty"`
}

// QueryCreatedPayload is the payload for query.created events.
type QueryCreatedPayload struct {
	QueryID string `json:"query_id"`
	StepID  string `json:"step_id,omitempty"`
	SQL     string `json:"sql,omitempty"`
}

// VisualizationPayload is the payload for visualization.created and
// visualization.updated events.
type VisualizationPayload struct {
	VisualizationID string         `json:"visualization_id"`
	StepID          string         `json:"step_id"`
	Kind            string         `json:"kind,omitempty"`
	Status          string         `json:"status,omitempty"`
	View            map[string]any `json:"view,omitempty"`
}

// SuggestPartialPayload is the payload for instructions.suggest.partial.
type SuggestPartialPayload struct {
	Instruction InstructionDraft `json:"instruction"`
}

// SuggestFinishedPayload is the payload for instructions.suggest.finished.
// Instructions is empty (non-nil) when suggestion generation failed.
type SuggestFinishedPayload struct {
	Instructions []InstructionDraft `json:"instructions"`
}

// InstructionDraft is a suggested instruction streamed to the client.
type InstructionDraft struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}
