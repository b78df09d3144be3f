// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/report"
)

// Instruction is the model entity for the Instruction schema.
type Instruction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// LoadMode holds the value of the "load_mode" field.
	LoadMode instruction.LoadMode `json:"load_mode,omitempty"`
	// Versioned container; instructions from the main build win over loose rows
	BuildID *string `json:"build_id,omitempty"`
	// "completion" for drafts produced by the post-analysis suggester
	AiSource string `json:"ai_source,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstructionQuery when eager-loading is set.
	Edges        InstructionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstructionEdges holds the relations/edges for other nodes in the graph.
type InstructionEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InstructionEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Instruction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case instruction.FieldUsageCount, instruction.FieldPosition:
			values[i] = new(sql.NullInt64)
		case instruction.FieldID, instruction.FieldReportID, instruction.FieldText, instruction.FieldCategory, instruction.FieldLoadMode, instruction.FieldBuildID, instruction.FieldAiSource:
			values[i] = new(sql.NullString)
		case instruction.FieldCreatedAt, instruction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Instruction fields.
func (_m *Instruction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case instruction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case instruction.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case instruction.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case instruction.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case instruction.FieldLoadMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_mode", values[i])
			} else if value.Valid {
				_m.LoadMode = instruction.LoadMode(value.String)
			}
		case instruction.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = new(string)
				*_m.BuildID = value.String
			}
		case instruction.FieldAiSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_source", values[i])
			} else if value.Valid {
				_m.AiSource = value.String
			}
		case instruction.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case instruction.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case instruction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case instruction.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Instruction.
// This includes values selected through modifiers, order, etc.
func (_m *Instruction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the Instruction entity.
func (_m *Instruction) QueryReport() *ReportQuery {
	return NewInstructionClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this Instruction.
// Note that you need to call Instruction.Unwrap() before calling this method if this Instruction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Instruction) Update() *InstructionUpdateOne {
	return NewInstructionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Instruction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Instruction) Unwrap() *Instruction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Instruction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Instruction) String() string {
	var builder strings.Builder
	builder.WriteString("Instruction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("load_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoadMode))
	builder.WriteString(", ")
	if v := _m.BuildID; v != nil {
		builder.WriteString("build_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ai_source=")
	builder.WriteString(_m.AiSource)
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Instructions is a parsable slice of Instruction.
type Instructions []*Instruction
