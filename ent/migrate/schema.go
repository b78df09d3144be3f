// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "report_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error", "sigkill"}, Default: "in_progress"},
		{Name: "last_seq", Type: field.TypeInt, Default: 0},
		{Name: "loop_iterations", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "completion_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_completions_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[9]},
				RefColumns: []*schema.Column{CompletionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_report_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1]},
			},
			{
				Name:    "agentexecution_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[5]},
			},
		},
	}
	// CompletionsColumns holds the columns for the "completions" table.
	CompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "system"}},
		{Name: "prompt", Type: field.TypeJSON, Nullable: true},
		{Name: "completion", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error", "stopped"}, Default: "in_progress"},
		{Name: "turn_index", Type: field.TypeInt, Default: 0},
		{Name: "sigkill", Type: field.TypeBool, Default: false},
		{Name: "feedback_score", Type: field.TypeInt, Nullable: true},
		{Name: "judge_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "usage", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// CompletionsTable holds the schema information for the "completions" table.
	CompletionsTable = &schema.Table{
		Name:       "completions",
		Columns:    CompletionsColumns,
		PrimaryKey: []*schema.Column{CompletionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "completions_reports_completions",
				Columns:    []*schema.Column{CompletionsColumns[14]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "completion_report_id_turn_index",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[14], CompletionsColumns[6]},
			},
			{
				Name:    "completion_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[1]},
			},
			{
				Name:    "completion_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompletionsColumns[12]},
			},
		},
	}
	// CompletionBlocksColumns holds the columns for the "completion_blocks" table.
	CompletionBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "agent_execution_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt},
		{Name: "block_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error", "stopped"}, Default: "in_progress"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completion_id", Type: field.TypeString},
		{Name: "plan_decision_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_execution_id", Type: field.TypeString, Nullable: true},
	}
	// CompletionBlocksTable holds the schema information for the "completion_blocks" table.
	CompletionBlocksTable = &schema.Table{
		Name:       "completion_blocks",
		Columns:    CompletionBlocksColumns,
		PrimaryKey: []*schema.Column{CompletionBlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "completion_blocks_completions_blocks",
				Columns:    []*schema.Column{CompletionBlocksColumns[10]},
				RefColumns: []*schema.Column{CompletionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "completion_blocks_plan_decisions_block",
				Columns:    []*schema.Column{CompletionBlocksColumns[11]},
				RefColumns: []*schema.Column{PlanDecisionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "completion_blocks_tool_executions_block",
				Columns:    []*schema.Column{CompletionBlocksColumns[12]},
				RefColumns: []*schema.Column{ToolExecutionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "completionblock_completion_id_seq_block_index",
				Unique:  false,
				Columns: []*schema.Column{CompletionBlocksColumns[10], CompletionBlocksColumns[2], CompletionBlocksColumns[3]},
			},
			{
				Name:    "completionblock_agent_execution_id_seq",
				Unique:  true,
				Columns: []*schema.Column{CompletionBlocksColumns[1], CompletionBlocksColumns[2]},
			},
		},
	}
	// ContextSnapshotsColumns holds the columns for the "context_snapshots" table.
	ContextSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "completion_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"initial", "pre_tool", "post_tool", "final"}},
		{Name: "loop_index", Type: field.TypeInt},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_execution_id", Type: field.TypeString},
	}
	// ContextSnapshotsTable holds the schema information for the "context_snapshots" table.
	ContextSnapshotsTable = &schema.Table{
		Name:       "context_snapshots",
		Columns:    ContextSnapshotsColumns,
		PrimaryKey: []*schema.Column{ContextSnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "context_snapshots_agent_executions_context_snapshots",
				Columns:    []*schema.Column{ContextSnapshotsColumns[6]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextsnapshot_agent_execution_id_loop_index",
				Unique:  false,
				Columns: []*schema.Column{ContextSnapshotsColumns[6], ContextSnapshotsColumns[3]},
			},
			{
				Name:    "contextsnapshot_completion_id",
				Unique:  false,
				Columns: []*schema.Column{ContextSnapshotsColumns[1]},
			},
		},
	}
	// QueriesColumns holds the columns for the "queries" table.
	QueriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "data_source_id", Type: field.TypeString, Nullable: true},
		{Name: "sql", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// QueriesTable holds the schema information for the "queries" table.
	QueriesTable = &schema.Table{
		Name:       "queries",
		Columns:    QueriesColumns,
		PrimaryKey: []*schema.Column{QueriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "queries_reports_queries",
				Columns:    []*schema.Column{QueriesColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataquery_report_id",
				Unique:  false,
				Columns: []*schema.Column{QueriesColumns[5]},
			},
		},
	}
	// DataSourcesColumns holds the columns for the "data_sources" table.
	DataSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "dialect", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "tables", Type: field.TypeJSON, Nullable: true},
		{Name: "user_overlays", Type: field.TypeJSON, Nullable: true},
		{Name: "auth_policy", Type: field.TypeString, Default: "shared"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// DataSourcesTable holds the schema information for the "data_sources" table.
	DataSourcesTable = &schema.Table{
		Name:       "data_sources",
		Columns:    DataSourcesColumns,
		PrimaryKey: []*schema.Column{DataSourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_sources_reports_data_sources",
				Columns:    []*schema.Column{DataSourcesColumns[9]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datasource_report_id_active",
				Unique:  false,
				Columns: []*schema.Column{DataSourcesColumns[9], DataSourcesColumns[3]},
			},
		},
	}
	// InstructionsColumns holds the columns for the "instructions" table.
	InstructionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "load_mode", Type: field.TypeEnum, Enums: []string{"always", "intelligent", "disabled"}, Default: "intelligent"},
		{Name: "build_id", Type: field.TypeString, Nullable: true},
		{Name: "ai_source", Type: field.TypeString, Nullable: true},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// InstructionsTable holds the schema information for the "instructions" table.
	InstructionsTable = &schema.Table{
		Name:       "instructions",
		Columns:    InstructionsColumns,
		PrimaryKey: []*schema.Column{InstructionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "instructions_reports_instructions",
				Columns:    []*schema.Column{InstructionsColumns[10]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "instruction_report_id_load_mode",
				Unique:  false,
				Columns: []*schema.Column{InstructionsColumns[10], InstructionsColumns[3]},
			},
			{
				Name:    "instruction_build_id",
				Unique:  false,
				Columns: []*schema.Column{InstructionsColumns[4]},
			},
		},
	}
	// PlanDecisionsColumns holds the columns for the "plan_decisions" table.
	PlanDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "loop_index", Type: field.TypeInt},
		{Name: "plan_type", Type: field.TypeEnum, Enums: []string{"action", "research"}, Default: "action"},
		{Name: "reasoning_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "assistant_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "action_name", Type: field.TypeString, Nullable: true},
		{Name: "action_arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_complete", Type: field.TypeBool, Default: false},
		{Name: "final_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "final", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_execution_id", Type: field.TypeString},
	}
	// PlanDecisionsTable holds the schema information for the "plan_decisions" table.
	PlanDecisionsTable = &schema.Table{
		Name:       "plan_decisions",
		Columns:    PlanDecisionsColumns,
		PrimaryKey: []*schema.Column{PlanDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_decisions_agent_executions_plan_decisions",
				Columns:    []*schema.Column{PlanDecisionsColumns[15]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "plandecision_agent_execution_id_seq",
				Unique:  true,
				Columns: []*schema.Column{PlanDecisionsColumns[15], PlanDecisionsColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[3]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "query_id", Type: field.TypeString, Nullable: true},
		{Name: "code", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "data_model", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "success", "error"}, Default: "in_progress"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "widget_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_widgets_steps",
				Columns:    []*schema.Column{StepsColumns[9]},
				RefColumns: []*schema.Column{WidgetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_widget_id",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[9]},
			},
			{
				Name:    "step_query_id",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[1]},
			},
		},
	}
	// ToolExecutionsColumns holds the columns for the "tool_executions" table.
	ToolExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_action", Type: field.TypeString, Nullable: true},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "success", "error"}, Default: "running"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "created_widget_id", Type: field.TypeString, Nullable: true},
		{Name: "created_step_id", Type: field.TypeString, Nullable: true},
		{Name: "created_visualization_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_execution_id", Type: field.TypeString},
		{Name: "plan_decision_id", Type: field.TypeString},
	}
	// ToolExecutionsTable holds the schema information for the "tool_executions" table.
	ToolExecutionsTable = &schema.Table{
		Name:       "tool_executions",
		Columns:    ToolExecutionsColumns,
		PrimaryKey: []*schema.Column{ToolExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_executions_agent_executions_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[15]},
				RefColumns: []*schema.Column{AgentExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tool_executions_plan_decisions_tool_executions",
				Columns:    []*schema.Column{ToolExecutionsColumns[16]},
				RefColumns: []*schema.Column{PlanDecisionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolexecution_agent_execution_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[15], ToolExecutionsColumns[13]},
			},
			{
				Name:    "toolexecution_tool_name",
				Unique:  false,
				Columns: []*schema.Column{ToolExecutionsColumns[1]},
			},
		},
	}
	// VisualizationsColumns holds the columns for the "visualizations" table.
	VisualizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString, Default: "table"},
		{Name: "view", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "ready", "error"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "step_id", Type: field.TypeString},
	}
	// VisualizationsTable holds the schema information for the "visualizations" table.
	VisualizationsTable = &schema.Table{
		Name:       "visualizations",
		Columns:    VisualizationsColumns,
		PrimaryKey: []*schema.Column{VisualizationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "visualizations_steps_visualizations",
				Columns:    []*schema.Column{VisualizationsColumns[6]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "visualization_step_id",
				Unique:  false,
				Columns: []*schema.Column{VisualizationsColumns[6]},
			},
		},
	}
	// WidgetsColumns holds the columns for the "widgets" table.
	WidgetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "completion_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeString},
	}
	// WidgetsTable holds the schema information for the "widgets" table.
	WidgetsTable = &schema.Table{
		Name:       "widgets",
		Columns:    WidgetsColumns,
		PrimaryKey: []*schema.Column{WidgetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "widgets_reports_widgets",
				Columns:    []*schema.Column{WidgetsColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "widget_report_id",
				Unique:  false,
				Columns: []*schema.Column{WidgetsColumns[5]},
			},
			{
				Name:    "widget_completion_id",
				Unique:  false,
				Columns: []*schema.Column{WidgetsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		CompletionsTable,
		CompletionBlocksTable,
		ContextSnapshotsTable,
		QueriesTable,
		DataSourcesTable,
		InstructionsTable,
		PlanDecisionsTable,
		ReportsTable,
		StepsTable,
		ToolExecutionsTable,
		VisualizationsTable,
		WidgetsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = CompletionsTable
	CompletionsTable.ForeignKeys[0].RefTable = ReportsTable
	CompletionBlocksTable.ForeignKeys[0].RefTable = CompletionsTable
	CompletionBlocksTable.ForeignKeys[1].RefTable = PlanDecisionsTable
	CompletionBlocksTable.ForeignKeys[2].RefTable = ToolExecutionsTable
	ContextSnapshotsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	QueriesTable.ForeignKeys[0].RefTable = ReportsTable
	QueriesTable.Annotation = &entsql.Annotation{
		Table: "queries",
	}
	DataSourcesTable.ForeignKeys[0].RefTable = ReportsTable
	InstructionsTable.ForeignKeys[0].RefTable = ReportsTable
	PlanDecisionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	StepsTable.ForeignKeys[0].RefTable = WidgetsTable
	ToolExecutionsTable.ForeignKeys[0].RefTable = AgentExecutionsTable
	ToolExecutionsTable.ForeignKeys[1].RefTable = PlanDecisionsTable
	VisualizationsTable.ForeignKeys[0].RefTable = StepsTable
	WidgetsTable.ForeignKeys[0].RefTable = ReportsTable
}
