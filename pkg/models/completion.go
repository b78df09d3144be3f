// Package models contains request/response models and business domain types.
package models

import "github.com/datalens-ai/datalens/ent"

// Prompt is the user input for one turn.
type Prompt struct {
	Content  string       `json:"content"`
	ModelID  string       `json:"model_id,omitempty"`
	WidgetID string       `json:"widget_id,omitempty"`
	StepID   string       `json:"step_id,omitempty"`
	Mode     string       `json:"mode,omitempty"`
	Mentions []MentionRef `json:"mentions,omitempty"`
}

// MentionRef is an @-reference carried in a prompt.
type MentionRef struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CreateCompletionRequest starts one turn. Capabilities carries the caller
// organization's capability flags; tools requiring a flag the caller lacks
// are hidden from the planner and refused at execution.
type CreateCompletionRequest struct {
	ReportID     string   `json:"report_id"`
	UserID       string   `json:"user_id,omitempty"`
	Prompt       Prompt   `json:"prompt"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// BlockView is one block of a completion assembled for clients.
type BlockView struct {
	ID              string `json:"id"`
	PlanDecisionID  string `json:"plan_decision_id,omitempty"`
	ToolExecutionID string `json:"tool_execution_id,omitempty"`
	Seq             int    `json:"seq"`
	BlockIndex      int    `json:"block_index"`
	Content         string `json:"content"`
	Reasoning       string `json:"reasoning"`
	Status          string `json:"status"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

// CompletionView is one completion with its ordered blocks.
type CompletionView struct {
	*ent.Completion
	Blocks []BlockView `json:"blocks,omitempty"`
}

// CompletionsV2Response is the user/system pair created by one turn.
type CompletionsV2Response struct {
	User   *CompletionView `json:"user"`
	System *CompletionView `json:"system"`
}

// TokenEstimateResponse reports the size of the would-be planner prompt.
type TokenEstimateResponse struct {
	PromptTokens    int     `json:"prompt_tokens"`
	ModelLimit      int     `json:"model_limit,omitempty"`
	RemainingTokens int     `json:"remaining_tokens,omitempty"`
	NearLimit       bool    `json:"near_limit"`
	ContextUsagePct float64 `json:"context_usage_pct,omitempty"`
}

// UsageSnapshot is the token accounting recorded on the completion at turn
// end.
type UsageSnapshot struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
