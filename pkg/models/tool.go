package models

// CreateToolExecutionRequest records the start of one tool invocation.
type CreateToolExecutionRequest struct {
	PlanDecisionID   string                 `json:"plan_decision_id"`
	AgentExecutionID string                 `json:"agent_execution_id"`
	ToolName         string                 `json:"tool_name"`
	ToolAction       string                 `json:"tool_action,omitempty"`
	Arguments        map[string]interface{} `json:"arguments,omitempty"`
	AttemptNumber    int                    `json:"attempt_number"`
}

// FinalizeToolExecutionRequest records the outcome of a tool invocation.
type FinalizeToolExecutionRequest struct {
	Status                  string                 `json:"status"`
	Result                  map[string]interface{} `json:"result,omitempty"`
	ResultSummary           string                 `json:"result_summary"`
	ErrorMessage            string                 `json:"error_message,omitempty"`
	DurationMs              int                    `json:"duration_ms"`
	CreatedWidgetID         string                 `json:"created_widget_id,omitempty"`
	CreatedStepID           string                 `json:"created_step_id,omitempty"`
	CreatedVisualizationIDs []string               `json:"created_visualization_ids,omitempty"`
}
