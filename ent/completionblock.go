// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// CompletionBlock is the model entity for the CompletionBlock schema.
type CompletionBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CompletionID holds the value of the "completion_id" field.
	CompletionID string `json:"completion_id,omitempty"`
	// AgentExecutionID holds the value of the "agent_execution_id" field.
	AgentExecutionID string `json:"agent_execution_id,omitempty"`
	// Set for decision blocks; mutually exclusive with tool_execution_id
	PlanDecisionID *string `json:"plan_decision_id,omitempty"`
	// Set for tool blocks; mutually exclusive with plan_decision_id
	ToolExecutionID *string `json:"tool_execution_id,omitempty"`
	// Pinned decision seq for decision blocks, tool-finish seq for tool blocks
	Seq int `json:"seq,omitempty"`
	// Position within the completion
	BlockIndex int `json:"block_index,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Status holds the value of the "status" field.
	Status completionblock.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CompletionBlockQuery when eager-loading is set.
	Edges        CompletionBlockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CompletionBlockEdges holds the relations/edges for other nodes in the graph.
type CompletionBlockEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Completion `json:"parent,omitempty"`
	// PlanDecision holds the value of the plan_decision edge.
	PlanDecision *PlanDecision `json:"plan_decision,omitempty"`
	// ToolExecution holds the value of the tool_execution edge.
	ToolExecution *ToolExecution `json:"tool_execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionBlockEdges) ParentOrErr() (*Completion, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: completion.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// PlanDecisionOrErr returns the PlanDecision value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionBlockEdges) PlanDecisionOrErr() (*PlanDecision, error) {
	if e.PlanDecision != nil {
		return e.PlanDecision, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: plandecision.Label}
	}
	return nil, &NotLoadedError{edge: "plan_decision"}
}

// ToolExecutionOrErr returns the ToolExecution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CompletionBlockEdges) ToolExecutionOrErr() (*ToolExecution, error) {
	if e.ToolExecution != nil {
		return e.ToolExecution, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: toolexecution.Label}
	}
	return nil, &NotLoadedError{edge: "tool_execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionblock.FieldSeq, completionblock.FieldBlockIndex:
			values[i] = new(sql.NullInt64)
		case completionblock.FieldID, completionblock.FieldCompletionID, completionblock.FieldAgentExecutionID, completionblock.FieldPlanDecisionID, completionblock.FieldToolExecutionID, completionblock.FieldContent, completionblock.FieldReasoning, completionblock.FieldStatus, completionblock.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case completionblock.FieldCreatedAt, completionblock.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionBlock fields.
func (_m *CompletionBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionblock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case completionblock.FieldCompletionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_id", values[i])
			} else if value.Valid {
				_m.CompletionID = value.String
			}
		case completionblock.FieldAgentExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_execution_id", values[i])
			} else if value.Valid {
				_m.AgentExecutionID = value.String
			}
		case completionblock.FieldPlanDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_decision_id", values[i])
			} else if value.Valid {
				_m.PlanDecisionID = new(string)
				*_m.PlanDecisionID = value.String
			}
		case completionblock.FieldToolExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_execution_id", values[i])
			} else if value.Valid {
				_m.ToolExecutionID = new(string)
				*_m.ToolExecutionID = value.String
			}
		case completionblock.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case completionblock.FieldBlockIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field block_index", values[i])
			} else if value.Valid {
				_m.BlockIndex = int(value.Int64)
			}
		case completionblock.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case completionblock.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case completionblock.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = completionblock.Status(value.String)
			}
		case completionblock.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case completionblock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case completionblock.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionBlock.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the CompletionBlock entity.
func (_m *CompletionBlock) QueryParent() *CompletionQuery {
	return NewCompletionBlockClient(_m.config).QueryParent(_m)
}

// QueryPlanDecision queries the "plan_decision" edge of the CompletionBlock entity.
func (_m *CompletionBlock) QueryPlanDecision() *PlanDecisionQuery {
	return NewCompletionBlockClient(_m.config).QueryPlanDecision(_m)
}

// QueryToolExecution queries the "tool_execution" edge of the CompletionBlock entity.
func (_m *CompletionBlock) QueryToolExecution() *ToolExecutionQuery {
	return NewCompletionBlockClient(_m.config).QueryToolExecution(_m)
}

// Update returns a builder for updating this CompletionBlock.
// Note that you need to call CompletionBlock.Unwrap() before calling this method if this CompletionBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionBlock) Update() *CompletionBlockUpdateOne {
	return NewCompletionBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionBlock) Unwrap() *CompletionBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionBlock) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("completion_id=")
	builder.WriteString(_m.CompletionID)
	builder.WriteString(", ")
	builder.WriteString("agent_execution_id=")
	builder.WriteString(_m.AgentExecutionID)
	builder.WriteString(", ")
	if v := _m.PlanDecisionID; v != nil {
		builder.WriteString("plan_decision_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToolExecutionID; v != nil {
		builder.WriteString("tool_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("block_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockIndex))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompletionBlocks is a parsable slice of CompletionBlock.
type CompletionBlocks []*CompletionBlock
