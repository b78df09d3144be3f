// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/report"
)

// DataSource is the model entity for the DataSource schema.
type DataSource struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// e.g. postgres, snowflake, bigquery
	Dialect string `json:"dialect,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Introspected table metadata: name, columns, pks, fks, usage stats
	Tables []map[string]interface{} `json:"tables,omitempty"`
	// Per-user table overlays applied under user_required auth policies
	UserOverlays map[string]interface{} `json:"user_overlays,omitempty"`
	// shared | user_required
	AuthPolicy string `json:"auth_policy,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataSourceQuery when eager-loading is set.
	Edges        DataSourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataSourceEdges holds the relations/edges for other nodes in the graph.
type DataSourceEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataSourceEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datasource.FieldTables, datasource.FieldUserOverlays:
			values[i] = new([]byte)
		case datasource.FieldActive:
			values[i] = new(sql.NullBool)
		case datasource.FieldID, datasource.FieldReportID, datasource.FieldName, datasource.FieldDialect, datasource.FieldAuthPolicy:
			values[i] = new(sql.NullString)
		case datasource.FieldCreatedAt, datasource.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataSource fields.
func (_m *DataSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datasource.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case datasource.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case datasource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case datasource.FieldDialect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dialect", values[i])
			} else if value.Valid {
				_m.Dialect = value.String
			}
		case datasource.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case datasource.FieldTables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tables); err != nil {
					return fmt.Errorf("unmarshal field tables: %w", err)
				}
			}
		case datasource.FieldUserOverlays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_overlays", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserOverlays); err != nil {
					return fmt.Errorf("unmarshal field user_overlays: %w", err)
				}
			}
		case datasource.FieldAuthPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_policy", values[i])
			} else if value.Valid {
				_m.AuthPolicy = value.String
			}
		case datasource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case datasource.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DataSource.
// This includes values selected through modifiers, order, etc.
func (_m *DataSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the DataSource entity.
func (_m *DataSource) QueryReport() *ReportQuery {
	return NewDataSourceClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this DataSource.
// Note that you need to call DataSource.Unwrap() before calling this method if this DataSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataSource) Update() *DataSourceUpdateOne {
	return NewDataSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataSource) Unwrap() *DataSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataSource) String() string {
	var builder strings.Builder
	builder.WriteString("DataSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("dialect=")
	builder.WriteString(_m.Dialect)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("tables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tables))
	builder.WriteString(", ")
	builder.WriteString("user_overlays=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserOverlays))
	builder.WriteString(", ")
	builder.WriteString("auth_policy=")
	builder.WriteString(_m.AuthPolicy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataSources is a parsable slice of DataSource.
type DataSources []*DataSource
