package models

// UpsertPlanDecisionRequest writes one planner decision row, keyed by
// (agent_execution_id, seq). Partial updates reuse the same seq.
type UpsertPlanDecisionRequest struct {
	AgentExecutionID string                 `json:"agent_execution_id"`
	Seq              int                    `json:"seq"`
	LoopIndex        int                    `json:"loop_index"`
	PlanType         string                 `json:"plan_type"`
	ReasoningMessage string                 `json:"reasoning_message"`
	AssistantMessage string                 `json:"assistant_message"`
	ActionName       string                 `json:"action_name,omitempty"`
	ActionArguments  map[string]interface{} `json:"action_arguments,omitempty"`
	AnalysisComplete bool                   `json:"analysis_complete"`
	FinalAnswer      string                 `json:"final_answer,omitempty"`
	ErrorCode        string                 `json:"error_code,omitempty"`
	ErrorMessage     string                 `json:"error_message,omitempty"`
	Final            bool                   `json:"final"`
}

// UpsertBlockRequest writes one completion block. Exactly one of
// PlanDecisionID and ToolExecutionID must be set; the upsert is keyed by
// that id within the completion.
type UpsertBlockRequest struct {
	CompletionID     string `json:"completion_id"`
	AgentExecutionID string `json:"agent_execution_id"`
	PlanDecisionID   string `json:"plan_decision_id,omitempty"`
	ToolExecutionID  string `json:"tool_execution_id,omitempty"`
	Seq              int    `json:"seq"`
	Content          string `json:"content"`
	Reasoning        string `json:"reasoning"`
	Status           string `json:"status"`
	ErrorMessage     string `json:"error_message,omitempty"`
}
