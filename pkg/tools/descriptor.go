// Package tools provides the tool registry and runner: descriptors with
// argument schemas, plan-type and capability filtering, and policy-driven
// execution with retries and watchdog timeouts.
package tools

import (
	"encoding/json"
	"fmt"
)

// Observation policies control whether a tool's result enters the planner
// context.
const (
	ObservationOnTrigger = "on_trigger"
	ObservationNever     = "never"
)

// Tool event types forwarded from executors while a tool runs.
const (
	EventProgress = "tool.progress"
	EventPartial  = "tool.partial"
	EventStdout   = "tool.stdout"
	EventError    = "tool.error"
)

// ToolEvent is one streamed emission from a running tool.
type ToolEvent struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// EmitFunc is handed to executors to stream events back to the runner.
type EmitFunc func(ToolEvent)

// Descriptor declares one tool to the registry.
type Descriptor struct {
	Name        string
	Description string
	// PlanTypes lists the decision plan types that may select this tool.
	PlanTypes []string
	// ArgsSchema is an optional JSON Schema the arguments are validated
	// against before execution.
	ArgsSchema json.RawMessage
	// ObservationPolicy governs whether results are added to the planner
	// context.
	ObservationPolicy string
	// Capabilities lists organization capability flags required to use the
	// tool. Empty means unrestricted.
	Capabilities []string
}

// Observation is the planner-facing digest of one tool execution.
type Observation struct {
	Summary          string                 `json:"summary"`
	Status           string                 `json:"status"`
	ErrorCode        string                 `json:"error_code,omitempty"`
	AnalysisComplete bool                   `json:"analysis_complete"`
	FinalAnswer      string                 `json:"final_answer,omitempty"`
	Details          map[string]interface{} `json:"details,omitempty"`
}

// Result is the normalized outcome of one tool execution: the observation
// plus an optional structured output for downstream artifact handling.
type Result struct {
	Observation Observation            `json:"observation"`
	Output      map[string]interface{} `json:"output,omitempty"`

	CreatedWidgetID         string   `json:"created_widget_id,omitempty"`
	CreatedStepID           string   `json:"created_step_id,omitempty"`
	CreatedVisualizationIDs []string `json:"created_visualization_ids,omitempty"`
}

// ValidationError marks a permanent, non-retryable tool failure caused by
// bad input. The loop surfaces it as an observation so the planner can
// self-correct.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a validation failure with the given code.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
