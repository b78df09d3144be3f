// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/report"
)

// DataQuery is the model entity for the DataQuery schema.
type DataQuery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// DataSourceID holds the value of the "data_source_id" field.
	DataSourceID string `json:"data_source_id,omitempty"`
	// SQL holds the value of the "sql" field.
	SQL string `json:"sql,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataQueryQuery when eager-loading is set.
	Edges        DataQueryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataQueryEdges holds the relations/edges for other nodes in the graph.
type DataQueryEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataQueryEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataQuery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataquery.FieldID, dataquery.FieldReportID, dataquery.FieldDataSourceID, dataquery.FieldSQL:
			values[i] = new(sql.NullString)
		case dataquery.FieldCreatedAt, dataquery.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataQuery fields.
func (_m *DataQuery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataquery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dataquery.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case dataquery.FieldDataSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_source_id", values[i])
			} else if value.Valid {
				_m.DataSourceID = value.String
			}
		case dataquery.FieldSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sql", values[i])
			} else if value.Valid {
				_m.SQL = value.String
			}
		case dataquery.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dataquery.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DataQuery.
// This includes values selected through modifiers, order, etc.
func (_m *DataQuery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the DataQuery entity.
func (_m *DataQuery) QueryReport() *ReportQuery {
	return NewDataQueryClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this DataQuery.
// Note that you need to call DataQuery.Unwrap() before calling this method if this DataQuery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataQuery) Update() *DataQueryUpdateOne {
	return NewDataQueryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataQuery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataQuery) Unwrap() *DataQuery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataQuery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataQuery) String() string {
	var builder strings.Builder
	builder.WriteString("DataQuery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("data_source_id=")
	builder.WriteString(_m.DataSourceID)
	builder.WriteString(", ")
	builder.WriteString("sql=")
	builder.WriteString(_m.SQL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataQueries is a parsable slice of DataQuery.
type DataQueries []*DataQuery
