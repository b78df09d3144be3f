// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompletions holds the string denoting the completions edge name in mutations.
	EdgeCompletions = "completions"
	// EdgeDataSources holds the string denoting the data_sources edge name in mutations.
	EdgeDataSources = "data_sources"
	// EdgeInstructions holds the string denoting the instructions edge name in mutations.
	EdgeInstructions = "instructions"
	// EdgeWidgets holds the string denoting the widgets edge name in mutations.
	EdgeWidgets = "widgets"
	// EdgeQueries holds the string denoting the queries edge name in mutations.
	EdgeQueries = "queries"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// CompletionsTable is the table that holds the completions relation/edge.
	CompletionsTable = "completions"
	// CompletionsInverseTable is the table name for the Completion entity.
	// It exists in this package in order to avoid circular dependency with the "completion" package.
	CompletionsInverseTable = "completions"
	// CompletionsColumn is the table column denoting the completions relation/edge.
	CompletionsColumn = "report_id"
	// DataSourcesTable is the table that holds the data_sources relation/edge.
	DataSourcesTable = "data_sources"
	// DataSourcesInverseTable is the table name for the DataSource entity.
	// It exists in this package in order to avoid circular dependency with the "datasource" package.
	DataSourcesInverseTable = "data_sources"
	// DataSourcesColumn is the table column denoting the data_sources relation/edge.
	DataSourcesColumn = "report_id"
	// InstructionsTable is the table that holds the instructions relation/edge.
	InstructionsTable = "instructions"
	// InstructionsInverseTable is the table name for the Instruction entity.
	// It exists in this package in order to avoid circular dependency with the "instruction" package.
	InstructionsInverseTable = "instructions"
	// InstructionsColumn is the table column denoting the instructions relation/edge.
	InstructionsColumn = "report_id"
	// WidgetsTable is the table that holds the widgets relation/edge.
	WidgetsTable = "widgets"
	// WidgetsInverseTable is the table name for the Widget entity.
	// It exists in this package in order to avoid circular dependency with the "widget" package.
	WidgetsInverseTable = "widgets"
	// WidgetsColumn is the table column denoting the widgets relation/edge.
	WidgetsColumn = "report_id"
	// QueriesTable is the table that holds the queries relation/edge.
	QueriesTable = "queries"
	// QueriesInverseTable is the table name for the DataQuery entity.
	// It exists in this package in order to avoid circular dependency with the "dataquery" package.
	QueriesInverseTable = "queries"
	// QueriesColumn is the table column denoting the queries relation/edge.
	QueriesColumn = "report_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldOrganizationID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletionsCount orders the results by completions count.
func ByCompletionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCompletionsStep(), opts...)
	}
}

// ByCompletions orders the results by completions terms.
func ByCompletions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompletionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDataSourcesCount orders the results by data_sources count.
func ByDataSourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDataSourcesStep(), opts...)
	}
}

// ByDataSources orders the results by data_sources terms.
func ByDataSources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDataSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInstructionsCount orders the results by instructions count.
func ByInstructionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInstructionsStep(), opts...)
	}
}

// ByInstructions orders the results by instructions terms.
func ByInstructions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstructionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWidgetsCount orders the results by widgets count.
func ByWidgetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWidgetsStep(), opts...)
	}
}

// ByWidgets orders the results by widgets terms.
func ByWidgets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWidgetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQueriesCount orders the results by queries count.
func ByQueriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQueriesStep(), opts...)
	}
}

// ByQueries orders the results by queries terms.
func ByQueries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQueriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompletionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompletionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CompletionsTable, CompletionsColumn),
	)
}
func newDataSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DataSourcesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DataSourcesTable, DataSourcesColumn),
	)
}
func newInstructionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstructionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InstructionsTable, InstructionsColumn),
	)
}
func newWidgetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WidgetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WidgetsTable, WidgetsColumn),
	)
}
func newQueriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QueriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QueriesTable, QueriesColumn),
	)
}
