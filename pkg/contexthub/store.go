package contexthub

import (
	"context"
	"time"
)

// TableRecord is the storage shape of one introspected table. The JSON tags
// match the introspection pipeline's payload stored on data source rows.
type TableRecord struct {
	Name        string         `json:"name"`
	Columns     []ColumnSchema `json:"columns"`
	UsageCount  int            `json:"usage_count"`
	LastUsedAt  time.Time      `json:"last_used_at"`
	SuccessRate float64        `json:"success_rate"`
	Feedback    float64        `json:"feedback"`
	Centrality  float64        `json:"centrality"`
	Failures    int            `json:"failures"`
}

// DataSourceRecord is the storage shape of one data source.
type DataSourceRecord struct {
	ID         string
	Name       string
	Dialect    string
	Active     bool
	AuthPolicy string // shared | user_required
	Tables     []TableRecord
	// UserOverlays maps table name to a per-user replacement applied when
	// the auth policy is user_required and a user is present.
	UserOverlays map[string]TableRecord
}

// InstructionRecord is the storage shape of one instruction.
type InstructionRecord struct {
	ID         string
	Text       string
	Category   string
	LoadMode   string
	BuildID    string
	UsageCount int
	Position   int
}

// MessageRecord is the storage shape of one prior conversation message.
type MessageRecord struct {
	Role      string
	Content   string
	CreatedAt time.Time
	Mentions  []string
}

// Store is the read-only storage surface the section builders consume.
// Implemented by the services layer; faked in tests.
type Store interface {
	ListDataSources(ctx context.Context, reportID string, activeOnly bool) ([]DataSourceRecord, error)
	ListInstructions(ctx context.Context, reportID string) ([]InstructionRecord, error)
	// ListMessages returns prior completions rendered as conversation
	// messages, excluding the still-open turn identified by
	// excludeCompletionID (and its system child).
	ListMessages(ctx context.Context, reportID, excludeCompletionID string) ([]MessageRecord, error)
	ListResources(ctx context.Context, reportID string) ([]Resource, error)
	ListFiles(ctx context.Context, reportID string) ([]FileRef, error)
	ListWidgets(ctx context.Context, reportID string) ([]WidgetRef, error)
	ListQueries(ctx context.Context, reportID string) ([]QueryRef, error)
	ListCode(ctx context.Context, reportID string) ([]CodeSnippet, error)
	ListEntities(ctx context.Context, reportID, query string) ([]Entity, error)
}
