package models

// CreateInstructionRequest adds one instruction to a report.
type CreateInstructionRequest struct {
	ReportID string `json:"report_id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	LoadMode string `json:"load_mode"`
	BuildID  string `json:"build_id,omitempty"`
	AISource string `json:"ai_source,omitempty"`
	Position int    `json:"position"`
}

// InstructionDraft is one suggested instruction streamed after a turn.
type InstructionDraft struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}
