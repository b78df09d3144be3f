// Package planner drives the streaming planner LLM and turns its output
// into validated plan decisions. The driver emits raw token events, partial
// decisions extracted from the incomplete JSON stream, and exactly one
// final decision per call.
package planner

// Plan types a decision may carry.
const (
	PlanTypeAction   = "action"
	PlanTypeResearch = "research"
)

// Validation error codes surfaced on a final decision.
const (
	ErrCodeInputValidation = "input_validation_error"
	ErrCodeValidation      = "validation_error"
	ErrCodeMissingAction   = "missing_action"
)

// Action is the tool invocation a decision requests.
type Action struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// DecisionError is a structured validation failure attached to a final
// decision so the loop can retry with context.
type DecisionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Decision is the planner output for one loop iteration.
type Decision struct {
	PlanType         string         `json:"plan_type"`
	ReasoningMessage string         `json:"reasoning_message"`
	AssistantMessage string         `json:"assistant_message"`
	Action           *Action        `json:"action,omitempty"`
	AnalysisComplete bool           `json:"analysis_complete"`
	FinalAnswer      string         `json:"final_answer,omitempty"`
	Err              *DecisionError `json:"error,omitempty"`
}

// HasAction reports whether the decision requests a tool invocation.
func (d *Decision) HasAction() bool {
	return d.Action != nil && d.Action.Name != ""
}

// Event is one element of the driver's output stream.
type Event interface{ isDriverEvent() }

// TokensEvent carries raw streamed text. The loop drops these; they exist
// for callers that want the unparsed feed.
type TokensEvent struct {
	Delta string
}

// PartialEvent carries a progressively filled decision.
type PartialEvent struct {
	Decision *Decision
}

// FinalEvent terminates one driver call. Decision.Err is set when
// validation failed.
type FinalEvent struct {
	Decision *Decision
}

func (*TokensEvent) isDriverEvent()  {}
func (*PartialEvent) isDriverEvent() {}
func (*FinalEvent) isDriverEvent()   {}
