package models

// CreateWidgetRequest creates a widget owned by a completion.
type CreateWidgetRequest struct {
	ReportID     string `json:"report_id"`
	CompletionID string `json:"completion_id"`
	Title        string `json:"title"`
}

// CreateQueryRequest records one executed query.
type CreateQueryRequest struct {
	ReportID     string `json:"report_id"`
	DataSourceID string `json:"data_source_id,omitempty"`
	SQL          string `json:"sql"`
}

// CreateStepRequest creates a widget step.
type CreateStepRequest struct {
	WidgetID  string                 `json:"widget_id"`
	QueryID   string                 `json:"query_id,omitempty"`
	Code      string                 `json:"code,omitempty"`
	DataModel map[string]interface{} `json:"data_model,omitempty"`
}

// CreateVisualizationRequest creates a draft visualization for a step.
type CreateVisualizationRequest struct {
	StepID string                 `json:"step_id"`
	Kind   string                 `json:"kind"`
	View   map[string]interface{} `json:"view,omitempty"`
}

// FinalizeStepRequest writes the step's finished code, data, and data model.
type FinalizeStepRequest struct {
	Code      string                   `json:"code,omitempty"`
	Data      []map[string]interface{} `json:"data,omitempty"`
	DataModel map[string]interface{}   `json:"data_model,omitempty"`
	Status    string                   `json:"status"`
	Error     string                   `json:"error,omitempty"`
}
