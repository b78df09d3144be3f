package contexthub

// Snapshot kinds mark the checkpoint a persisted context snapshot was taken
// at.
const (
	SnapshotInitial  = "initial"
	SnapshotPreTool  = "pre_tool"
	SnapshotPostTool = "post_tool"
	SnapshotFinal    = "final"
)

// InstructionUsage is the tracking record kept for each instruction that was
// actually sent to the LLM.
type InstructionUsage struct {
	ID         string `json:"id"`
	LoadMode   string `json:"load_mode"`
	LoadReason string `json:"load_reason"`
	UsageCount int    `json:"usage_count"`
}

// SchemaUsage records which tables of one data source entered the context.
type SchemaUsage struct {
	DataSourceID string   `json:"data_source_id"`
	Name         string   `json:"name"`
	Sampled      []string `json:"sampled_tables"`
	Indexed      int      `json:"indexed_tables"`
}

// ObservationDigest is the compact trace of one tool observation.
type ObservationDigest struct {
	ToolName  string `json:"tool_name"`
	Status    string `json:"status"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Snapshot is the slim usage-only projection of a context view. Large
// rendered bodies are stripped; only tracking records and size metadata
// survive into storage.
type Snapshot struct {
	Kind         string              `json:"kind"`
	LoopIndex    int                 `json:"loop_index"`
	Instructions []InstructionUsage  `json:"instructions"`
	Schemas      []SchemaUsage       `json:"schemas"`
	Observations []ObservationDigest `json:"observations"`
	MessageCount int                 `json:"message_count"`
	WidgetCount  int                 `json:"widget_count"`
	QueryCount   int                 `json:"query_count"`
	Meta         Metadata            `json:"meta"`
}

// BuildSnapshot projects the current view into its slim persisted form.
func (h *Hub) BuildSnapshot(kind string, loopIndex int) Snapshot {
	v := h.View()

	snap := Snapshot{
		Kind:         kind,
		LoopIndex:    loopIndex,
		MessageCount: len(v.Warm.Messages.Messages),
		WidgetCount:  len(v.Warm.Widgets.Items),
		QueryCount:   len(v.Warm.Queries.Items),
		Meta:         v.Meta,
	}
	for _, it := range v.Static.Instructions.Items {
		snap.Instructions = append(snap.Instructions, InstructionUsage{
			ID:         it.ID,
			LoadMode:   it.LoadMode,
			LoadReason: it.LoadReason,
			UsageCount: it.UsageCount,
		})
	}
	sampleK := v.Static.Schemas.SampleTables
	if sampleK <= 0 {
		sampleK = 10
	}
	for _, src := range v.Static.Schemas.Sources {
		usage := SchemaUsage{DataSourceID: src.ID, Name: src.Name}
		for i, t := range src.Tables {
			if i < sampleK {
				usage.Sampled = append(usage.Sampled, t.Name)
			} else {
				usage.Indexed++
			}
		}
		snap.Schemas = append(snap.Schemas, usage)
	}
	for _, o := range v.Warm.Observations.Items {
		snap.Observations = append(snap.Observations, ObservationDigest{
			ToolName:  o.ToolName,
			Status:    o.Status,
			ErrorCode: o.ErrorCode,
		})
	}
	return snap
}
