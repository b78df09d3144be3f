// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
)

// ContextSnapshot is the model entity for the ContextSnapshot schema.
type ContextSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Denormalized for completion-level debugging queries
	CompletionID string `json:"completion_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind contextsnapshot.Kind `json:"kind,omitempty"`
	// LoopIndex holds the value of the "loop_index" field.
	LoopIndex int `json:"loop_index,omitempty"`
	// Slim usage-only projection: tracking records plus section token sizes
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextSnapshotQuery when eager-loading is set.
	Edges        ContextSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContextSnapshotEdges holds the relations/edges for other nodes in the graph.
type ContextSnapshotEdges struct {
	// Execution holds the value of the execution edge.
	Execution *AgentExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextSnapshotEdges) ExecutionOrErr() (*AgentExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextsnapshot.FieldPayload:
			values[i] = new([]byte)
		case contextsnapshot.FieldLoopIndex:
			values[i] = new(sql.NullInt64)
		case contextsnapshot.FieldID, contextsnapshot.FieldAgentExecutionID, contextsnapshot.FieldCompletionID, contextsnapshot.FieldKind:
			values[i] = new(sql.NullString)
		case contextsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextSnapshot fields.
func (_m *ContextSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextsnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextsnapshot.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case contextsnapshot.FieldCompletionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_id", values[i])
			} else if value.Valid {
				_m.CompletionID = value.String
			}
		case contextsnapshot.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = contextsnapshot.Kind(value.String)
			}
		case contextsnapshot.FieldLoopIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_index", values[i])
			} else if value.Valid {
				_m.LoopIndex = int(value.Int64)
			}
		case contextsnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case contextsnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ContextSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the ContextSnapshot entity.
func (_m *ContextSnapshot) QueryExecution() *AgentExecutionQuery {
	return NewContextSnapshotClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this ContextSnapshot.
// Note that you need to call ContextSnapshot.Unwrap() before calling this method if this ContextSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextSnapshot) Update() *ContextSnapshotUpdateOne {
	return NewContextSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextSnapshot) Unwrap() *ContextSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ContextSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	builder.WriteString("completion_id=")
	builder.WriteString(_m.CompletionID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("loop_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopIndex))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextSnapshots is a parsable slice of ContextSnapshot.
type ContextSnapshots []*ContextSnapshot
