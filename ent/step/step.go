// Code generated by ent, DO NOT EDIT.

package step

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the step type in the database.
	Label = "step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWidgetID holds the string denoting the widget_id field in the database.
	FieldWidgetID = "widget_id"
	// FieldQueryID holds the string denoting the query_id field in the database.
	FieldQueryID = "query_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldDataModel holds the string denoting the data_model field in the database.
	FieldDataModel = "data_model"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWidget holds the string denoting the widget edge name in mutations.
	EdgeWidget = "widget"
	// EdgeVisualizations holds the string denoting the visualizations edge name in mutations.
	EdgeVisualizations = "visualizations"
	// Table holds the table name of the step in the database.
	Table = "steps"
	// WidgetTable is the table that holds the widget relation/edge.
	WidgetTable = "steps"
	// WidgetInverseTable is the table name for the Widget entity.
	// It exists in this package in order to avoid circular dependency with the "widget" package.
	WidgetInverseTable = "widgets"
	// WidgetColumn is the table column denoting the widget relation/edge.
	WidgetColumn = "widget_id"
	// VisualizationsTable is the table that holds the visualizations relation/edge.
	VisualizationsTable = "visualizations"
	// VisualizationsInverseTable is the table name for the Visualization entity.
	// It exists in this package in order to avoid circular dependency with the "visualization" package.
	VisualizationsInverseTable = "visualizations"
	// VisualizationsColumn is the table column denoting the visualizations relation/edge.
	VisualizationsColumn = "step_id"
)

// Columns holds all SQL columns for step fields.
var Columns = []string{
	FieldID,
	FieldWidgetID,
	FieldQueryID,
	FieldCode,
	FieldData,
	FieldDataModel,
	FieldStatus,
	FieldErrorMessage,
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
	// DefaultCode holds the default value on creation for the "code" field.
	DefaultCode string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSuccess, StatusError:
		return nil
	default:
		return fmt.Errorf("step: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Step queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWidgetID orders the results by the widget_id field.
func ByWidgetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidgetID, opts...).ToFunc()
}

// ByQueryID orders the results by the query_id field.
func ByQueryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWidgetField orders the results by widget field.
func ByWidgetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWidgetStep(), sql.OrderByField(field, opts...))
	}
}

// ByVisualizationsCount orders the results by visualizations count.
func ByVisualizationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVisualizationsStep(), opts...)
	}
}

// ByVisualizations orders the results by visualizations terms.
func ByVisualizations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVisualizationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWidgetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WidgetInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WidgetTable, WidgetColumn),
	)
}
func newVisualizationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VisualizationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VisualizationsTable, VisualizationsColumn),
	)
}
