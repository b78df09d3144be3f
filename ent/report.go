// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/report"
)

// Report is the model entity for the Report schema.
type Report struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Generated asynchronously after the first turn
	Title string `json:"title,omitempty"`
	// Capability flags are resolved per organization
	OrganizationID string `json:"organization_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReportQuery when eager-loading is set.
	Edges        ReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReportEdges holds the relations/edges for other nodes in the graph.
type ReportEdges struct {
	// Completions holds the value of the completions edge.
	Completions []*Completion `json:"completions,omitempty"`
	// DataSources holds the value of the data_sources edge.
	DataSources []*DataSource `json:"data_sources,omitempty"`
	// Instructions holds the value of the instructions edge.
	Instructions []*Instruction `json:"instructions,omitempty"`
	// Widgets holds the value of the widgets edge.
	Widgets []*Widget `json:"widgets,omitempty"`
	// Queries holds the value of the queries edge.
	Queries []*DataQuery `json:"queries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CompletionsOrErr returns the Completions value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) CompletionsOrErr() ([]*Completion, error) {
	if e.loadedTypes[0] {
		return e.Completions, nil
	}
	return nil, &NotLoadedError{edge: "completions"}
}

// DataSourcesOrErr returns the DataSources value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) DataSourcesOrErr() ([]*DataSource, error) {
	if e.loadedTypes[1] {
		return e.DataSources, nil
	}
	return nil, &NotLoadedError{edge: "data_sources"}
}

// InstructionsOrErr returns the Instructions value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) InstructionsOrErr() ([]*Instruction, error) {
	if e.loadedTypes[2] {
		return e.Instructions, nil
	}
	return nil, &NotLoadedError{edge: "instructions"}
}

// WidgetsOrErr returns the Widgets value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) WidgetsOrErr() ([]*Widget, error) {
	if e.loadedTypes[3] {
		return e.Widgets, nil
	}
	return nil, &NotLoadedError{edge: "widgets"}
}

// QueriesOrErr returns the Queries value or an error if the edge
// was not loaded in eager-loading.
func (e ReportEdges) QueriesOrErr() ([]*DataQuery, error) {
	if e.loadedTypes[4] {
		return e.Queries, nil
	}
	return nil, &NotLoadedError{edge: "queries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Report) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case report.FieldID, report.FieldTitle, report.FieldOrganizationID:
			values[i] = new(sql.NullString)
		case report.FieldCreatedAt, report.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Report fields.
func (_m *Report) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case report.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case report.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case report.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case report.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case report.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Report.
// This includes values selected through modifiers, order, etc.
func (_m *Report) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompletions queries the "completions" edge of the Report entity.
func (_m *Report) QueryCompletions() *CompletionQuery {
	return NewReportClient(_m.config).QueryCompletions(_m)
}

// QueryDataSources queries the "data_sources" edge of the Report entity.
func (_m *Report) QueryDataSources() *DataSourceQuery {
	return NewReportClient(_m.config).QueryDataSources(_m)
}

// QueryInstructions queries the "instructions" edge of the Report entity.
func (_m *Report) QueryInstructions() *InstructionQuery {
	return NewReportClient(_m.config).QueryInstructions(_m)
}

// QueryWidgets queries the "widgets" edge of the Report entity.
func (_m *Report) QueryWidgets() *WidgetQuery {
	return NewReportClient(_m.config).QueryWidgets(_m)
}

// QueryQueries queries the "queries" edge of the Report entity.
func (_m *Report) QueryQueries() *DataQueryQuery {
	return NewReportClient(_m.config).QueryQueries(_m)
}

// Update returns a builder for updating this Report.
// Note that you need to call Report.Unwrap() before calling this method if this Report
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Report) Update() *ReportUpdateOne {
	return NewReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Report entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Report) Unwrap() *Report {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Report is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Report) String() string {
	var builder strings.Builder
	builder.WriteString("Report(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Reports is a parsable slice of Report.
type Reports []*Report
